package bankparser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// descriptionSeparator splits composite description fields of the form
// "<label> - <name> - <document>".
const descriptionSeparator = " - "

// ParseDate parses the DD/MM/YYYY dates bank exports carry. The all-zero
// sentinel some banks emit on summary lines is rejected like any other
// malformed date.
func ParseDate(value string) (models.Date, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" || cleaned == "00/00/0000" {
		return models.Date{}, fmt.Errorf("invalid date %q", value)
	}

	parts := strings.Split(cleaned, "/")
	if len(parts) != 3 {
		return models.Date{}, fmt.Errorf("invalid date %q", value)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid day in date %q: %w", value, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid month in date %q: %w", value, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid year in date %q: %w", value, err)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return models.Date{}, fmt.Errorf("date out of range: %q", value)
	}

	return models.NewDate(year, time.Month(month), day), nil
}

// SplitDescription decomposes a composite description into its label,
// counterparty name and counterparty document. Fewer than three parts are
// tolerated: two parts leave the document empty, one part leaves both empty.
func SplitDescription(description string) (label, name, document string) {
	parts := strings.Split(strings.TrimSpace(description), descriptionSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	label = parts[0]
	if len(parts) > 1 {
		name = parts[1]
	}
	if len(parts) > 2 {
		document = parts[2]
	}
	return label, name, document
}

// JoinDescription builds a composite description from non-empty parts.
func JoinDescription(parts ...string) string {
	nonEmpty := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(part))
		}
	}
	return strings.Join(nonEmpty, descriptionSeparator)
}

// SynthesizeID derives an identifier for rows whose bank provides none.
// It hashes only stable row content, so re-importing the same file yields
// the same identifiers and the dedup gate can do its job.
func SynthesizeID(date models.Date, value decimal.Decimal, description string) string {
	sum := sha256.Sum256([]byte(date.String() + "|" + value.String() + "|" + strings.TrimSpace(description)))
	return hex.EncodeToString(sum[:16])
}

// NormalizeDocument strips a counterparty document down to its digits.
// All-zero placeholders count as no document.
func NormalizeDocument(document string) string {
	var b strings.Builder
	allZero := true
	for _, r := range document {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if r != '0' {
				allZero = false
			}
		}
	}
	if b.Len() == 0 || allZero {
		return ""
	}
	return b.String()
}
