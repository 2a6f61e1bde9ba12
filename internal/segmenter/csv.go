package segmenter

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/parsererror"
)

// segmentCSV groups records into fixed-size chunks, each serialized as
// one tabular fragment. Ingest CSVs have arbitrary schemas, so records
// are read raw rather than mapped to structs; the header record is
// repeated at the top of every chunk so the oracle sees column names.
func (s *Segmenter) segmentCSV(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &parsererror.ExtractionError{
			FilePath: path,
			Stage:    "csv open",
			Err:      err,
		}
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // statements are rarely rectangular

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.ExtractionError{
			FilePath: path,
			Stage:    "csv parse",
			Err:      err,
		}
	}
	if len(records) == 0 {
		return &Result{}, nil
	}

	header := serializeRecord(records[0])
	rows := records[1:]

	result := &Result{}
	for start := 0; start < len(rows); start += s.csvChunkRows {
		end := start + s.csvChunkRows
		if end > len(rows) {
			end = len(rows)
		}

		lines := make([]string, 0, end-start+1)
		lines = append(lines, header)
		for _, record := range rows[start:end] {
			lines = append(lines, serializeRecord(record))
		}

		result.Fragments = append(result.Fragments, models.Fragment{
			Text: strings.Join(lines, "\n"),
			Hint: models.HintTabular,
		})
	}

	s.log.Debug("Segmented CSV",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: "records", Value: len(rows)},
		logging.Field{Key: logging.FieldCount, Value: len(result.Fragments)})

	return result, nil
}

func serializeRecord(record []string) string {
	trimmed := make([]string, len(record))
	for i, field := range record {
		trimmed[i] = strings.TrimSpace(field)
	}
	return strings.Join(trimmed, " | ")
}
