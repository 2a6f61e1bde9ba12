package oracle

import (
	"context"
	"sync"

	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// MockOracle implements Oracle for testing. Responses are keyed by
// fragment text; unknown fragments yield no candidates.
type MockOracle struct {
	// Responses maps fragment text to the candidates to return.
	Responses map[string][]models.Candidate
	// FailOn maps fragment text to an error, simulating per-fragment
	// oracle failures.
	FailOn map[string]error
	// Instrument is returned by ClassifyInstrument.
	Instrument string
	// InstrumentErr, when set, makes ClassifyInstrument fail.
	InstrumentErr error

	// ExtractCalls records the fragments passed to Extract. Guarded by
	// mu: the orchestrator calls Extract from multiple workers.
	ExtractCalls []models.Fragment

	mu sync.Mutex
}

// Extract returns the canned response for the fragment text.
func (m *MockOracle) Extract(_ context.Context, fragment models.Fragment) ([]models.Candidate, error) {
	m.mu.Lock()
	m.ExtractCalls = append(m.ExtractCalls, fragment)
	m.mu.Unlock()
	if err, ok := m.FailOn[fragment.Text]; ok {
		return nil, err
	}
	return m.Responses[fragment.Text], nil
}

// ClassifyInstrument returns the canned instrument answer.
func (m *MockOracle) ClassifyInstrument(context.Context, string) (string, error) {
	if m.InstrumentErr != nil {
		return "", m.InstrumentErr
	}
	return m.Instrument, nil
}
