package bankparser

import (
	"testing"
	"time"

	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    models.Date
		expectError bool
	}{
		{name: "valid", input: "04/08/2025", expected: models.NewDate(2025, time.August, 4)},
		{name: "surrounding whitespace", input: " 31/12/2023 ", expected: models.NewDate(2023, time.December, 31)},
		{name: "empty", input: "", expectError: true},
		{name: "all-zero sentinel", input: "00/00/0000", expectError: true},
		{name: "iso format rejected", input: "2025-08-04", expectError: true},
		{name: "month out of range", input: "04/13/2025", expectError: true},
		{name: "day out of range", input: "32/01/2025", expectError: true},
		{name: "non-numeric", input: "aa/bb/cccc", expectError: true},
		{name: "too few parts", input: "04/2025", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, date.Equal(tt.expected), "got %s, want %s", date, tt.expected)
		})
	}
}

func TestSplitDescription(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedLabel    string
		expectedName     string
		expectedDocument string
	}{
		{
			name:             "three parts",
			input:            "Pagamento Recebido - Maria Silva - 111.222.333-44",
			expectedLabel:    "Pagamento Recebido",
			expectedName:     "Maria Silva",
			expectedDocument: "111.222.333-44",
		},
		{
			name:          "two parts",
			input:         "Compra no débito - Padaria Pão Quente",
			expectedLabel: "Compra no débito",
			expectedName:  "Padaria Pão Quente",
		},
		{
			name:          "one part",
			input:         "Rendimento da poupança",
			expectedLabel: "Rendimento da poupança",
		},
		{
			name:             "extra parts keep first three",
			input:            "PIX - Loja - 12.345.678/0001-99 - detalhe",
			expectedLabel:    "PIX",
			expectedName:     "Loja",
			expectedDocument: "12.345.678/0001-99",
		},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, name, document := SplitDescription(tt.input)
			assert.Equal(t, tt.expectedLabel, label)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedDocument, document)
		})
	}
}

func TestJoinDescription(t *testing.T) {
	assert.Equal(t, "Pix - Loja", JoinDescription("Pix", "Loja"))
	assert.Equal(t, "Pix", JoinDescription("Pix", "", "  "))
	assert.Equal(t, "", JoinDescription("", ""))
	assert.Equal(t, "a - b - c", JoinDescription("a", "b", "c"))
}

func TestSynthesizeID(t *testing.T) {
	date := models.NewDate(2025, time.August, 4)
	value := decimal.NewFromFloat(150)

	first := SynthesizeID(date, value, "Pagamento Recebido")
	second := SynthesizeID(date, value, "Pagamento Recebido")
	assert.Equal(t, first, second, "same row content must synthesize the same id")
	assert.Len(t, first, 32)

	assert.NotEqual(t, first, SynthesizeID(date, value, "Outra descrição"))
	assert.NotEqual(t, first, SynthesizeID(date, decimal.NewFromFloat(151), "Pagamento Recebido"))
	assert.NotEqual(t, first, SynthesizeID(models.NewDate(2025, time.August, 5), value, "Pagamento Recebido"))
}

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "cpf with punctuation", input: "111.222.333-44", expected: "11122233344"},
		{name: "cnpj with punctuation", input: "12.345.678/0001-99", expected: "12345678000199"},
		{name: "digits only", input: "11122233344", expected: "11122233344"},
		{name: "empty", input: "", expected: ""},
		{name: "no digits", input: "abc", expected: ""},
		{name: "all zeros", input: "000.000.000-00", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDocument(tt.input))
		})
	}
}
