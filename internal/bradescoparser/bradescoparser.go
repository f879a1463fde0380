// Package bradescoparser maps Bradesco account statement rows into canonical
// transactions. Bradesco exports split inflows and outflows into separate
// credit/debit columns and carry only a document reference that is often
// blank, in which case identifiers are synthesized from stable row content.
package bradescoparser

import (
	"github.com/TonAlmeida/finance-dashboard/internal/bankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/categorizer"
	"github.com/TonAlmeida/finance-dashboard/internal/models"
	"github.com/TonAlmeida/finance-dashboard/internal/rowparser"
	"github.com/TonAlmeida/finance-dashboard/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Column headers of a Bradesco CSV export.
const (
	columnDate     = "Data"
	columnHistory  = "Histórico"
	columnDocument = "Docto."
	columnCredit   = "Crédito (R$)"
	columnDebit    = "Débito (R$)"
)

// Mapper implements bankparser.Mapper for Bradesco statements.
type Mapper struct {
	vocab *taxonomy.Set
}

// New creates a Bradesco mapper classifying against the given taxonomy.
func New(vocab *taxonomy.Set) *Mapper {
	return &Mapper{vocab: vocab}
}

// Format returns the bank selector for this mapper.
func (m *Mapper) Format() string {
	return "bradesco"
}

// RequiredColumns lists the headers a Bradesco export must carry.
func (m *Mapper) RequiredColumns() []string {
	return []string{columnDate, columnHistory, columnCredit, columnDebit}
}

// Map converts parsed rows into transactions. The signed value comes from
// whichever of the credit/debit columns is populated.
func (m *Mapper) Map(rows []rowparser.Row) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for _, row := range rows {
		if row.Get(columnDate) == "" {
			continue
		}

		date, err := bankparser.ParseDate(row.Get(columnDate))
		if err != nil {
			log.WithError(err).WithField("row", row).Warn("Skipping row with malformed date")
			continue
		}

		value := m.rowValue(row)
		description := row.Get(columnHistory)
		_, name, document := bankparser.SplitDescription(description)

		id := row.Get(columnDocument)
		if id == "" || id == "0" {
			id = bankparser.SynthesizeID(date, value, description)
		}

		tx := models.Transaction{
			ID:                  id,
			Date:                date,
			Value:               value,
			Description:         description,
			Category:            categorizer.ForValue(description, value, m.vocab),
			CounterpartName:     name,
			CounterpartDocument: bankparser.NormalizeDocument(document),
		}
		tx.Normalize()
		transactions = append(transactions, tx)
	}

	log.WithFields(logrus.Fields{
		"format": m.Format(),
		"rows":   len(rows),
		"mapped": len(transactions),
	}).Info("Mapped Bradesco statement rows")

	return transactions
}

// rowValue resolves the signed amount: credits are inflows, debits are
// negated into outflows. A row with neither, or with unparsable values,
// degrades to zero.
func (m *Mapper) rowValue(row rowparser.Row) decimal.Decimal {
	if credit := row.Get(columnCredit); credit != "" {
		value, err := models.ParseBrazilianAmount(credit)
		if err != nil {
			log.WithError(err).WithField("row", row).Warn("Unparsable credit, defaulting to zero")
			return decimal.Zero
		}
		return value
	}

	if debit := row.Get(columnDebit); debit != "" {
		value, err := models.ParseBrazilianAmount(debit)
		if err != nil {
			log.WithError(err).WithField("row", row).Warn("Unparsable debit, defaulting to zero")
			return decimal.Zero
		}
		return value.Abs().Neg()
	}

	return decimal.Zero
}
