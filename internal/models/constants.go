package models

// Category fallbacks shared across the pipeline.
const (
	// CategoryOther is the fallback when no vocabulary keyword matches.
	CategoryOther = "Outros"

	// CategoryPlaceholder labels the synthetic bucket emitted for an empty
	// transaction list so charts never receive an empty series.
	CategoryPlaceholder = "Sem dados"
)

// UnknownCounterpart is the display name used when no counterparty name can
// be extracted from a statement row.
const UnknownCounterpart = "Desconhecido"
