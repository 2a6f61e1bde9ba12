package models

// FormatHint tells the extraction oracle what shape of text a fragment
// carries, so it can pick the right parsing context.
type FormatHint string

const (
	// HintTabular marks row-oriented fragments: CSV chunks or table rows
	// lifted out of a statement page.
	HintTabular FormatHint = "tabular"
	// HintFreeText marks whole-page prose where no table structure was
	// detected.
	HintFreeText FormatHint = "freetext"
)

// Fragment is one unit of document text submitted to the oracle in a
// single call.
type Fragment struct {
	Text string
	Hint FormatHint
}
