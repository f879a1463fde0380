package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseAmount parses a plain decimal amount string (dot as decimal separator),
// tolerating currency symbols and surrounding whitespace.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := stripCurrency(value)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return dec, nil
}

// ParseBrazilianAmount parses an amount in Brazilian notation: dot as
// thousands separator, comma as decimal separator ("1.234,56").
func ParseBrazilianAmount(value string) (decimal.Decimal, error) {
	cleaned := stripCurrency(value)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return dec, nil
}

func stripCurrency(value string) string {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, "R$", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return cleaned
}

// FormatBRL renders a decimal value as Brazilian currency ("R$ 1.234,56").
func FormatBRL(value decimal.Decimal) string {
	f, _ := value.Float64()
	return brlPrinter.Sprintf("R$ %.2f", f)
}
