package segmenter

import (
	"regexp"
	"strings"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/parsererror"
)

var (
	// columnSplit matches runs of two or more spaces, which is how
	// pdftotext -layout separates table columns.
	columnSplit = regexp.MustCompile(`\s{2,}`)

	footerPattern = regexp.MustCompile(`(?i)^page\s+\d+\s+of\s+\d+$`)

	dateLabels   = []string{"date", "txn date", "transaction date", "value date"}
	amountLabels = []string{"amount", "debit", "credit", "withdrawal", "deposit", "balance"}
)

func (s *Segmenter) segmentPDF(path string) (*Result, error) {
	text, err := s.pdf.ExtractText(path)
	if err != nil {
		return nil, &parsererror.ExtractionError{
			FilePath: path,
			Stage:    "pdf text extraction",
			Err:      err,
		}
	}

	pages := strings.Split(text, "\f")
	result := &Result{HeaderText: strings.TrimSpace(pages[0])}

	tableFragments, textFragments := 0, 0
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}

		rows := extractTableRows(page)
		if len(rows) == 0 {
			// No detectable table on this page; let the oracle work the
			// prose over as a single fragment.
			result.Fragments = append(result.Fragments, models.Fragment{
				Text: strings.TrimSpace(page),
				Hint: models.HintFreeText,
			})
			textFragments++
			continue
		}

		for start := 0; start < len(rows); start += s.pdfBatchRows {
			end := start + s.pdfBatchRows
			if end > len(rows) {
				end = len(rows)
			}
			result.Fragments = append(result.Fragments, models.Fragment{
				Text: strings.Join(rows[start:end], "\n"),
				Hint: models.HintTabular,
			})
			tableFragments++
		}
	}

	s.log.Debug("Segmented PDF",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: "pages", Value: len(pages)},
		logging.Field{Key: "table_fragments", Value: tableFragments},
		logging.Field{Key: "text_fragments", Value: textFragments})

	return result, nil
}

// extractTableRows returns the plausible transaction rows of a page,
// filtering lines that would waste an oracle call: column-header rows,
// lines with fewer than two fields, and page footers. Returns nil when
// the page does not look tabular at all.
func extractTableRows(page string) []string {
	var rows []string
	sawTable := false

	for _, line := range strings.Split(page, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if footerPattern.MatchString(trimmed) {
			continue
		}

		fields := splitColumns(trimmed)
		if len(fields) < 2 {
			continue
		}
		sawTable = true

		if isHeaderRow(fields) {
			continue
		}
		rows = append(rows, trimmed)
	}

	if !sawTable {
		return nil
	}
	return rows
}

func splitColumns(line string) []string {
	var fields []string
	for _, f := range columnSplit.Split(line, -1) {
		if strings.TrimSpace(f) != "" {
			fields = append(fields, strings.TrimSpace(f))
		}
	}
	return fields
}

// isHeaderRow reports whether the fields look like column labels: a
// date-like label and an amount-like label appearing together.
func isHeaderRow(fields []string) bool {
	hasDate, hasAmount := false, false
	for _, f := range fields {
		lower := strings.ToLower(f)
		for _, label := range dateLabels {
			if strings.Contains(lower, label) {
				hasDate = true
			}
		}
		for _, label := range amountLabels {
			if strings.Contains(lower, label) {
				hasAmount = true
			}
		}
	}
	return hasDate && hasAmount
}
