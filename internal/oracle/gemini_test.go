package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `[{"merchant": "Uber"}]`,
			expected: `[{"merchant": "Uber"}]`,
		},
		{
			name:     "json fence stripped",
			input:    "```json\n[{\"merchant\": \"Uber\"}]\n```",
			expected: `[{"merchant": "Uber"}]`,
		},
		{
			name:     "bare fence stripped",
			input:    "```\n[]\n```",
			expected: `[]`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n[]\n  ",
			expected: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONResponse(tt.input))
		})
	}
}

func TestDecodeCandidates(t *testing.T) {
	t.Run("list form", func(t *testing.T) {
		candidates, err := decodeCandidates(`[{"date":"2024-03-01","merchant":"Zomato","amount":450.5}]`)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "Zomato", candidates[0].Merchant)
		assert.Equal(t, "450.5", candidates[0].Amount.String())
	})

	t.Run("wrapped object form", func(t *testing.T) {
		candidates, err := decodeCandidates(`{"transactions":[{"merchant":"Uber","amount":"1,250.00","date":"2024-03-02"}]}`)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "Uber", candidates[0].Merchant)
	})

	t.Run("single object form", func(t *testing.T) {
		candidates, err := decodeCandidates(`{"merchant":"Netflix","amount":649,"date":"2024-03-05"}`)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
	})

	t.Run("empty response", func(t *testing.T) {
		candidates, err := decodeCandidates("")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := decodeCandidates("the statement contains no transactions")
		assert.Error(t, err)
	})
}

func TestFilterCandidates(t *testing.T) {
	log := &logging.MockLogger{}

	candidates := []models.Candidate{
		{Date: "2024-01-15", Merchant: "Swiggy", Amount: "320.00"},
		{Date: "2024-01-15", Merchant: "EXAMPLE_MERCHANT_ONLY", Amount: "100.00"},
		{Date: "2024-01-16", Merchant: "Uber", Amount: ""},
		{Date: "2024-01-17", Merchant: "Amazon", Amount: "0"},
		{Date: "15/01/2024", Merchant: "Flipkart", Amount: "999.00"},
		{Date: "2024-01-18", Merchant: "IRCTC", Amount: "1,450.00"},
	}

	valid := FilterCandidates(candidates, log)

	require.Len(t, valid, 2)
	assert.Equal(t, "Swiggy", valid[0].Merchant)
	assert.Equal(t, "IRCTC", valid[1].Merchant)
}

func TestNewGeminiOracleRequiresKey(t *testing.T) {
	_, err := NewGeminiOracle(context.Background(), "", "gemini-2.0-flash", 0, &logging.MockLogger{})
	assert.Error(t, err)
}
