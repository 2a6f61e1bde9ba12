package oracle

import (
	"strings"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// placeholderMerchant is the worked-example merchant embedded in the
// extraction prompt. Models occasionally echo the example back; any
// candidate carrying it is discarded.
const placeholderMerchant = "EXAMPLE_MERCHANT"

// FilterCandidates applies the post-filters to raw oracle output.
// Placeholder merchants, missing or zero amounts, and dates not in
// YYYY-MM-DD form are all dropped. Filtered rows are not errors,
// just noise.
func FilterCandidates(candidates []models.Candidate, log logging.Logger) []models.Candidate {
	valid := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(strings.ToUpper(c.Merchant), placeholderMerchant) {
			log.Debug("Dropping candidate echoing prompt example",
				logging.Field{Key: logging.FieldMerchant, Value: c.Merchant})
			continue
		}
		if c.Amount.IsZero() {
			log.Debug("Dropping candidate without amount",
				logging.Field{Key: logging.FieldMerchant, Value: c.Merchant})
			continue
		}
		if !models.IsISODate(c.Date) {
			log.Debug("Dropping candidate with malformed date",
				logging.Field{Key: logging.FieldMerchant, Value: c.Merchant},
				logging.Field{Key: "date", Value: c.Date})
			continue
		}
		valid = append(valid, c)
	}
	return valid
}
