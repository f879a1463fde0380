package bbparser

import (
	"strings"
	"testing"
	"time"

	"github.com/TonAlmeida/finance-dashboard/internal/models"
	"github.com/TonAlmeida/finance-dashboard/internal/rowparser"
	"github.com/TonAlmeida/finance-dashboard/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRows(t *testing.T, csv string) []rowparser.Row {
	t.Helper()
	table, err := rowparser.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	return table.Rows
}

func TestMapperMetadata(t *testing.T) {
	mapper := New(taxonomy.DefaultSet())
	assert.Equal(t, "bb", mapper.Format())
	assert.Equal(t, []string{"Data", "Lançamento", "Valor"}, mapper.RequiredColumns())
}

func TestMapFiltersBalanceRows(t *testing.T) {
	csv := `Data,Lançamento,Detalhes,N° documento,Valor
01/03/2024,Saldo Anterior,,0,"1.000,00"
02/03/2024,Pix - Enviado,Mercado Central,123456,"-250,00"
02/03/2024,Saldo do dia,,0,"750,00"
31/03/2024,S A L D O,,0,"750,00"
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 1)

	tx := transactions[0]
	assert.True(t, tx.Date.Equal(models.NewDate(2024, time.March, 2)))
	assert.True(t, tx.Value.Equal(decimal.NewFromFloat(-250)))
	assert.Equal(t, "Pix - Enviado - Mercado Central", tx.Description)
	assert.Equal(t, "123456", tx.ID)
}

func TestMapBrazilianAmounts(t *testing.T) {
	csv := `Data,Lançamento,Detalhes,N° documento,Valor
05/03/2024,Transferência recebida,Fulano de Tal,987,"1.234,56"
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].Value.Equal(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, models.TypeIncome, transactions[0].Type)
}

func TestMapSynthesizesIDWhenDocumentBlankOrZero(t *testing.T) {
	csv := `Data,Lançamento,Detalhes,N° documento,Valor
05/03/2024,Compra com cartão,Padaria,0,"-10,00"
06/03/2024,Compra com cartão,Padaria,,"-20,00"
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 2)
	assert.NotEmpty(t, transactions[0].ID)
	assert.NotEmpty(t, transactions[1].ID)
	assert.NotEqual(t, "0", transactions[0].ID)
	assert.NotEqual(t, transactions[0].ID, transactions[1].ID)

	// Re-mapping the same rows synthesizes the same ids.
	again := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	assert.Equal(t, transactions[0].ID, again[0].ID)
	assert.Equal(t, transactions[1].ID, again[1].ID)
}

func TestMapSkipsMalformedDates(t *testing.T) {
	csv := `Data,Lançamento,Detalhes,N° documento,Valor
99/99/2024,Compra,Loja,1,"-10,00"
05/03/2024,Compra,Loja,2,"-10,00"
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 1)
	assert.Equal(t, "2", transactions[0].ID)
}

func TestMapCounterpartFromComposedDescription(t *testing.T) {
	csv := `Data,Lançamento,Detalhes,N° documento,Valor
05/03/2024,Pix - Enviado,Maria Silva,55,"-30,00"
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 1)
	// The composed description is "Pix - Enviado - Maria Silva".
	assert.Equal(t, "Enviado", transactions[0].CounterpartName)
}
