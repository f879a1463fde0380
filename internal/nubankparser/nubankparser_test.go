package nubankparser

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
	assert.Equal(t, "nu", mapper.Format())
	assert.Equal(t, []string{"Data", "Valor", "Identificador", "Descrição"}, mapper.RequiredColumns())
}

func TestMap(t *testing.T) {
	csv := `Data,Valor,Identificador,Descrição
04/08/2025,150.00,id-renda-1,Pagamento Recebido - Maria Silva - 111.222.333-44
05/08/2025,-45.90,id-padaria-1,Compra no débito - Padaria Pão Quente
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 2)

	income := transactions[0]
	assert.Equal(t, "id-renda-1", income.ID)
	assert.True(t, income.Date.Equal(models.NewDate(2025, time.August, 4)))
	assert.True(t, income.Value.Equal(decimal.NewFromFloat(150)))
	assert.Equal(t, "Renda", income.Category)
	assert.Equal(t, models.TypeIncome, income.Type)
	assert.Equal(t, "Maria Silva", income.CounterpartName)
	assert.Equal(t, "11122233344", income.CounterpartDocument)

	expense := transactions[1]
	assert.Equal(t, "id-padaria-1", expense.ID)
	assert.True(t, expense.Value.Equal(decimal.NewFromFloat(-45.9)))
	assert.Equal(t, "Alimentação", expense.Category)
	assert.Equal(t, models.TypeExpense, expense.Type)
	assert.Equal(t, "Padaria Pão Quente", expense.CounterpartName)
	assert.Equal(t, "", expense.CounterpartDocument)
}

func TestMapSkipsRowsWithoutDate(t *testing.T) {
	csv := `Data,Valor,Identificador,Descrição
,10.00,id-1,Sem data
00/00/0000,10.00,id-2,Data sentinela
04/08/2025,10.00,id-3,Pix recebido
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 1)
	assert.Equal(t, "id-3", transactions[0].ID)
}

func TestMapUnparsableValueDefaultsToZero(t *testing.T) {
	csv := `Data,Valor,Identificador,Descrição
04/08/2025,abc,id-1,Compra estranha
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].Value.IsZero())
	assert.Equal(t, models.TypeExpense, transactions[0].Type)
}

func TestMapSynthesizesMissingIdentifier(t *testing.T) {
	csv := `Data,Valor,Identificador,Descrição
04/08/2025,10.00,,Pix recebido - Fulano
`

	first := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	second := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEmpty(t, first[0].ID)
	assert.Equal(t, first[0].ID, second[0].ID, "synthesized ids must be reproducible")
}

func TestMapUnknownCounterpartDefault(t *testing.T) {
	csv := `Data,Valor,Identificador,Descrição
04/08/2025,-10.00,id-1,Tarifa bancária
`

	transactions := New(taxonomy.DefaultSet()).Map(parseRows(t, csv))
	require.Len(t, transactions, 1)
	assert.Equal(t, models.UnknownCounterpart, transactions[0].CounterpartName)
}
