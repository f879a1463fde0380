package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TonAlmeida/finance-dashboard/internal/aggregate"
	"github.com/TonAlmeida/finance-dashboard/internal/store"
	"github.com/TonAlmeida/finance-dashboard/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImporter(t *testing.T) (*Importer, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "transactions.json"))
	return New(st, DefaultRegistry(taxonomy.DefaultSet())), st
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const nubankStatement = `Data,Valor,Identificador,Descrição
04/08/2025,150.00,id-renda-1,Pagamento Recebido - Maria Silva - 111.222.333-44
05/08/2025,-45.90,id-padaria-1,Compra no débito - Padaria Pão Quente
05/08/2025,-45.90,id-padaria-1,Compra no débito - Padaria Pão Quente
`

func TestImportFiles(t *testing.T) {
	imp, st := newTestImporter(t)
	path := writeCSV(t, "nubank.csv", nubankStatement)

	result, err := imp.ImportFiles([]string{path}, "nu")
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesProcessed)
	assert.Equal(t, 3, result.Parsed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Duplicates)

	transactions, err := st.Load()
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	// The repeated identifier was swallowed by the dedup gate, so the
	// aggregates see exactly one income and one expense.
	summary := aggregate.Dashboard(transactions)
	assert.True(t, summary.Balance.Equal(decimal.NewFromFloat(104.1)), "balance %s", summary.Balance)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromFloat(150)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromFloat(45.9)))
	assert.Equal(t, 2, summary.TransactionsCount)

	assert.Equal(t, "Renda", transactions[0].Category)
	assert.Equal(t, "Alimentação", transactions[1].Category)
}

func TestImportFilesIdempotent(t *testing.T) {
	imp, st := newTestImporter(t)
	path := writeCSV(t, "nubank.csv", nubankStatement)

	first, err := imp.ImportFiles([]string{path}, "nu")
	require.NoError(t, err)
	assert.Equal(t, 2, first.Imported)

	second, err := imp.ImportFiles([]string{path}, "nu")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 3, second.Duplicates)

	transactions, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestImportFilesOverlappingBatch(t *testing.T) {
	imp, st := newTestImporter(t)

	august := writeCSV(t, "august.csv", `Data,Valor,Identificador,Descrição
04/08/2025,100.00,id-1,Pix recebido - A
05/08/2025,-20.00,id-2,Compra no débito - B
`)
	overlap := writeCSV(t, "overlap.csv", `Data,Valor,Identificador,Descrição
05/08/2025,-20.00,id-2,Compra no débito - B
06/08/2025,-30.00,id-3,Compra no débito - C
`)

	result, err := imp.ImportFiles([]string{august, overlap}, "nu")
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesProcessed)
	assert.Equal(t, 4, result.Parsed)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Duplicates)

	transactions, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestImportFilesUnknownFormat(t *testing.T) {
	imp, _ := newTestImporter(t)
	path := writeCSV(t, "nubank.csv", nubankStatement)

	_, err := imp.ImportFiles([]string{path}, "itau")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bank format")
}

func TestImportFilesNoFiles(t *testing.T) {
	imp, _ := newTestImporter(t)

	_, err := imp.ImportFiles(nil, "nu")
	assert.Error(t, err)
}

func TestImportFilesMissingFileFailsBatch(t *testing.T) {
	imp, st := newTestImporter(t)
	good := writeCSV(t, "good.csv", nubankStatement)

	_, err := imp.ImportFiles([]string{good, filepath.Join(t.TempDir(), "missing.csv")}, "nu")
	require.Error(t, err)

	// The batch failed before anything was persisted.
	transactions, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestImportFilesWrongColumnsFailBatch(t *testing.T) {
	imp, st := newTestImporter(t)
	wrong := writeCSV(t, "bb.csv", `Data,Lançamento,Detalhes,N° documento,Valor
02/03/2024,Pix - Enviado,Mercado,123,"-250,00"
`)

	_, err := imp.ImportFiles([]string{wrong}, "nu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid nu export")

	transactions, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestImportFilesTotals(t *testing.T) {
	imp, _ := newTestImporter(t)
	path := writeCSV(t, "nubank.csv", nubankStatement)

	result, err := imp.ImportFiles([]string{path}, "nu")
	require.NoError(t, err)

	// Totals describe the parsed batch, duplicates included.
	assert.True(t, result.TotalIncome.Equal(decimal.NewFromFloat(150)))
	assert.True(t, result.TotalExpenses.Equal(decimal.NewFromFloat(91.8)), "expenses %s", result.TotalExpenses)
}

func TestDefaultRegistryFormats(t *testing.T) {
	registry := DefaultRegistry(taxonomy.DefaultSet())

	for _, format := range []string{"nu", "bb", "bradesco"} {
		_, err := registry.Get(format)
		assert.NoError(t, err, "format %s should be registered", format)
	}
}
