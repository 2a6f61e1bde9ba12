package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// GeminiOracle implements Oracle against the Gemini API.
type GeminiOracle struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	log     logging.Logger
	timeout time.Duration
}

// NewGeminiOracle creates a Gemini-backed oracle. The timeout applies
// per call, so a hung request surfaces as a per-fragment failure rather
// than stalling the worker pool.
func NewGeminiOracle(ctx context.Context, apiKey, modelName string, timeout time.Duration, logger logging.Logger) (*GeminiOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	var temperature float32 // zero, extraction must be deterministic
	model.Temperature = &temperature

	return &GeminiOracle{
		client:  client,
		model:   model,
		log:     logger,
		timeout: timeout,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiOracle) Close() error {
	return g.client.Close()
}

// Extract asks the model for transactions in the fragment and filters
// the response before returning it.
func (g *GeminiOracle) Extract(ctx context.Context, fragment models.Fragment) ([]models.Candidate, error) {
	responseText, err := g.generate(ctx, extractionPrompt(fragment))
	if err != nil {
		return nil, err
	}

	candidates, err := decodeCandidates(cleanJSONResponse(responseText))
	if err != nil {
		return nil, fmt.Errorf("malformed oracle response: %w", err)
	}

	return FilterCandidates(candidates, g.log), nil
}

// ClassifyInstrument returns the model's raw answer for the header text.
func (g *GeminiOracle) ClassifyInstrument(ctx context.Context, headerText string) (string, error) {
	responseText, err := g.generate(ctx, instrumentPrompt(headerText))
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(responseText)
	answer = strings.ReplaceAll(answer, `"`, "")
	answer = strings.ReplaceAll(answer, "'", "")
	return answer, nil
}

func (g *GeminiOracle) generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// cleanJSONResponse strips Markdown code fences the model sometimes
// wraps around JSON output.
func cleanJSONResponse(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// decodeCandidates tolerates the three shapes models actually produce:
// a JSON list, a single object, or {"transactions": [...]}.
func decodeCandidates(clean string) ([]models.Candidate, error) {
	if clean == "" {
		return nil, nil
	}

	var list []models.Candidate
	if err := json.Unmarshal([]byte(clean), &list); err == nil {
		return list, nil
	}

	var wrapper struct {
		Transactions []models.Candidate `json:"transactions"`
	}
	if err := json.Unmarshal([]byte(clean), &wrapper); err == nil && wrapper.Transactions != nil {
		return wrapper.Transactions, nil
	}

	var single models.Candidate
	if err := json.Unmarshal([]byte(clean), &single); err == nil && single.Merchant != "" {
		return []models.Candidate{single}, nil
	}

	return nil, fmt.Errorf("response is neither a candidate list nor a transactions object")
}
