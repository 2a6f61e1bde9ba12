// Package oracle wraps the external extraction model behind a small
// interface. Everything the model returns is treated as untrusted and
// post-filtered before it reaches the store.
package oracle

import (
	"context"

	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// Oracle is the extraction/classification capability consumed by the
// ingestion pipeline. Both calls are best-effort: they may fail or
// return malformed data, and callers must tolerate that.
type Oracle interface {
	// Extract returns zero or more transaction candidates found in the
	// fragment. Implementations apply the defensive candidate filter
	// before returning.
	Extract(ctx context.Context, fragment models.Fragment) ([]models.Candidate, error)

	// ClassifyInstrument inspects header text and returns the model's
	// raw answer. Matching the answer against known instrument labels is
	// the caller's job.
	ClassifyInstrument(ctx context.Context, headerText string) (string, error)
}
