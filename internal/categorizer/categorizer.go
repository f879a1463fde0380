// Package categorizer classifies transaction descriptions against the
// category vocabularies by keyword substring matching.
package categorizer

import (
	"strings"
	"unicode"

	"github.com/TonAlmeida/finance-dashboard/internal/models"
	"github.com/TonAlmeida/finance-dashboard/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Normalize lowercases, trims and strips combining diacritical marks from a
// string (NFD decomposition, drop marks). It is applied to both sides of
// every keyword comparison: the vocabularies are not consistently
// diacritic-stripped, so normalizing only the description makes accented
// keywords silently unmatched.
func Normalize(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Classify returns the first category in the vocabulary with a keyword that
// is a substring of the normalized description, or "Outros" when nothing
// matches. First match wins; vocabulary order is the tie-break rule.
func Classify(description string, vocab []taxonomy.Category) string {
	text := Normalize(description)
	if text == "" {
		return models.CategoryOther
	}

	for _, category := range vocab {
		for _, keyword := range category.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(text, Normalize(keyword)) {
				log.WithFields(logrus.Fields{
					"keyword":  keyword,
					"category": category.Name,
				}).Debug("Description categorized by keyword match")
				return category.Name
			}
		}
	}

	return models.CategoryOther
}

// ForValue classifies a description selecting the vocabulary by the value's
// sign: positive values use the income vocabulary, negative and zero values
// the expense vocabulary.
func ForValue(description string, value decimal.Decimal, set *taxonomy.Set) string {
	return Classify(description, set.ForValueSign(value.IsPositive()))
}
