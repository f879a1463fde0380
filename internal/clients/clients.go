// Package clients groups transactions by counterparty identity, producing
// the per-counterparty activity view. Groups are rebuilt from the full
// transaction list every time; nothing here is persisted.
package clients

import (
	"regexp"
	"sort"
	"strings"

	"github.com/TonAlmeida/finance-dashboard/internal/bankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/categorizer"
	"github.com/TonAlmeida/finance-dashboard/internal/models"

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

// A document is only a plausible grouping key at CPF length or longer;
// shorter digit runs are reference numbers, not identities.
const minDocumentDigits = 11

// Masked document fragments some banks embed in counterparty names
// ("•••.123.456-••", "••.123.456/0001-••").
var (
	maskedCPF   = regexp.MustCompile(`•{3}\.\d{3}\.\d{3}-•{2}`)
	maskedCNPJ  = regexp.MustCompile(`•{2}\.\d{3}\.\d{3}/\d{4}-•{2}`)
	multiSpaces = regexp.MustCompile(`\s+`)
)

// Transfer type labels derived from description prefixes.
var transferTypeLabels = []struct {
	prefix string
	label  string
}{
	{"transferência enviada pelo pix", "PIX"},
	{"transferência recebida pelo pix", "PIX"},
	{"transferência recebida", "PIX"},
	{"reembolso recebido pelo pix", "PIX"},
	{"compra no débito", "Débito"},
	{"pagamento recebido", "Recebimento"},
	{"pagamento de boleto", "Boleto"},
	{"pagamento de fatura", "Fatura"},
}

// Extract groups the transactions by counterparty and returns the groups
// ordered by descending transaction count, ties broken by descending
// absolute balance, so the most active counterparties surface first.
func Extract(transactions []models.Transaction) []models.ClientGroup {
	groups := make(map[string]*models.ClientGroup)
	order := make([]string, 0)

	for _, tx := range transactions {
		name, document, transferType := counterpart(tx)
		key := groupKey(name, document, tx.Category)

		group, ok := groups[key]
		if !ok {
			group = &models.ClientGroup{
				Name:     name,
				Document: document,
				Date:     tx.Date,
				Balance:  decimal.Zero,
				Category: tx.Category,
			}
			groups[key] = group
			order = append(order, key)
		}

		group.Transactions++
		group.Balance = group.Balance.Add(tx.Value)
		if tx.Date.After(group.Date) {
			group.Date = tx.Date
			if transferType != "" {
				group.TransferType = transferType
			}
		}
		if group.TransferType == "" {
			group.TransferType = transferType
		}
	}

	result := make([]models.ClientGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Transactions != result[j].Transactions {
			return result[i].Transactions > result[j].Transactions
		}
		return result[i].Balance.Abs().GreaterThan(result[j].Balance.Abs())
	})

	log.WithFields(logrus.Fields{
		"transactions": len(transactions),
		"groups":       len(result),
	}).Debug("Extracted counterparty groups")

	return result
}

// counterpart resolves a transaction's counterparty identity. The mapped
// fields are preferred; rows mapped without one fall back to re-splitting
// the description. A row with neither still groups under the Unknown name
// rather than being dropped.
func counterpart(tx models.Transaction) (name, document, transferType string) {
	name = tx.CounterpartName
	document = tx.CounterpartDocument

	if name == "" || name == models.UnknownCounterpart {
		_, splitName, splitDocument := bankparser.SplitDescription(tx.Description)
		if splitName != "" {
			name = splitName
		}
		if document == "" {
			document = bankparser.NormalizeDocument(splitDocument)
		}
	}

	name = maskedCPF.ReplaceAllString(name, "")
	name = maskedCNPJ.ReplaceAllString(name, "")
	name = strings.TrimSpace(multiSpaces.ReplaceAllString(name, " "))
	if name == "" {
		name = models.UnknownCounterpart
	}

	return name, document, detectTransferType(tx.Description)
}

// detectTransferType labels a transaction by its description prefix, when
// one of the known statement labels is present.
func detectTransferType(description string) string {
	normalized := categorizer.Normalize(description)
	for _, entry := range transferTypeLabels {
		if strings.HasPrefix(normalized, categorizer.Normalize(entry.prefix)) {
			return entry.label
		}
	}
	return ""
}

// groupKey prefers a plausible document as identity; otherwise a normalized
// name plus category composite, so two different unnamed counterparties in
// different categories never merge accidentally.
func groupKey(name, document, category string) string {
	if len(document) >= minDocumentDigits {
		return document
	}
	normalized := strings.ReplaceAll(categorizer.Normalize(name), " ", "_")
	return normalized + "_" + category
}
