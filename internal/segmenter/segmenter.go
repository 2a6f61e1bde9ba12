// Package segmenter turns a raw document into an ordered sequence of
// fragments suitable for the extraction oracle. Fragment order is not
// semantically significant (downstream dedup makes it irrelevant to the
// persisted set) but is kept deterministic for testing.
package segmenter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/parsererror"
)

// Result carries the fragments plus the document header text used for
// payment-instrument inference. HeaderText is empty for documents
// without prose headers, such as CSVs.
type Result struct {
	Fragments  []models.Fragment
	HeaderText string
}

// Segmenter converts PDFs and CSVs into oracle fragments.
type Segmenter struct {
	pdf          PDFExtractor
	log          logging.Logger
	csvChunkRows int
	pdfBatchRows int
}

// New creates a Segmenter. A nil extractor selects the real
// pdftotext-backed one.
func New(pdf PDFExtractor, csvChunkRows, pdfBatchRows int, logger logging.Logger) *Segmenter {
	if pdf == nil {
		pdf = NewRealPDFExtractor()
	}
	if csvChunkRows < 1 {
		csvChunkRows = 20
	}
	if pdfBatchRows < 1 {
		pdfBatchRows = 1
	}
	return &Segmenter{
		pdf:          pdf,
		log:          logger,
		csvChunkRows: csvChunkRows,
		pdfBatchRows: pdfBatchRows,
	}
}

// Segment dispatches on the file extension.
func (s *Segmenter) Segment(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.segmentPDF(path)
	case ".csv":
		return s.segmentCSV(path)
	default:
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF or CSV",
			Msg:            fmt.Sprintf("unsupported extension %q", filepath.Ext(path)),
		}
	}
}
