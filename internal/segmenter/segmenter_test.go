package segmenter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/parsererror"
)

const statementPage = `HDFC Bank Credit Card Statement
Date          Description                 Amount
02/01/2024    UBER *TRIP MUMBAI           450.00
03/01/2024    ZOMATO ORDER                1,250.50
Page 1 of 2`

func TestSegmentPDFTableRows(t *testing.T) {
	mock := &MockPDFExtractor{MockText: statementPage}
	s := New(mock, 20, 1, &logging.MockLogger{})

	result, err := s.Segment("statement.pdf")
	require.NoError(t, err)

	// Header row and footer are filtered; two transaction rows remain,
	// one per fragment at the default batch size.
	require.Len(t, result.Fragments, 2)
	assert.Contains(t, result.Fragments[0].Text, "UBER")
	assert.Contains(t, result.Fragments[1].Text, "ZOMATO")
	for _, f := range result.Fragments {
		assert.Equal(t, models.HintTabular, f.Hint)
		assert.NotContains(t, f.Text, "Page 1 of 2")
		assert.NotContains(t, f.Text, "Description")
	}

	assert.Contains(t, result.HeaderText, "HDFC Bank")
}

func TestSegmentPDFBatching(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Date          Description      Amount\n")
	for i := 0; i < 5; i++ {
		sb.WriteString(fmt.Sprintf("0%d/01/2024    MERCHANT %d       100.00\n", i+1, i))
	}

	s := New(&MockPDFExtractor{MockText: sb.String()}, 20, 2, &logging.MockLogger{})
	result, err := s.Segment("statement.pdf")
	require.NoError(t, err)

	// 5 rows in batches of 2 -> 3 fragments.
	require.Len(t, result.Fragments, 3)
	assert.Equal(t, 2, strings.Count(result.Fragments[0].Text, "MERCHANT"))
	assert.Equal(t, 1, strings.Count(result.Fragments[2].Text, "MERCHANT"))
}

func TestSegmentPDFFreeTextFallback(t *testing.T) {
	prose := "This statement summarises activity on your account.\nNo tables here, just narrative text."
	s := New(&MockPDFExtractor{MockText: prose}, 20, 1, &logging.MockLogger{})

	result, err := s.Segment("letter.pdf")
	require.NoError(t, err)

	require.Len(t, result.Fragments, 1)
	assert.Equal(t, models.HintFreeText, result.Fragments[0].Hint)
	assert.Contains(t, result.Fragments[0].Text, "narrative text")
}

func TestSegmentPDFMultiplePages(t *testing.T) {
	twoPages := statementPage + "\f" + "Closing remarks and terms.\nThank you for banking with us."
	s := New(&MockPDFExtractor{MockText: twoPages}, 20, 1, &logging.MockLogger{})

	result, err := s.Segment("statement.pdf")
	require.NoError(t, err)

	// Two table fragments from page one, one free-text fragment from page two.
	require.Len(t, result.Fragments, 3)
	assert.Equal(t, models.HintFreeText, result.Fragments[2].Hint)
	// Header text comes from the first page only.
	assert.NotContains(t, result.HeaderText, "Closing remarks")
}

func TestSegmentPDFExtractorFailure(t *testing.T) {
	s := New(&MockPDFExtractor{MockErr: errors.New("boom")}, 20, 1, &logging.MockLogger{})

	_, err := s.Segment("statement.pdf")
	require.Error(t, err)

	var extractionErr *parsererror.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestSegmentCSVChunking(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.csv")

	var sb strings.Builder
	sb.WriteString("Date,Merchant,Amount\n")
	for i := 0; i < 45; i++ {
		sb.WriteString(fmt.Sprintf("2024-01-%02d,Merchant %d,%d.00\n", i%28+1, i, i+1))
	}
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0600))

	s := New(&MockPDFExtractor{}, 20, 1, &logging.MockLogger{})
	result, err := s.Segment(path)
	require.NoError(t, err)

	// 45 records at 20 per chunk -> 3 fragments, each carrying the header.
	require.Len(t, result.Fragments, 3)
	for _, f := range result.Fragments {
		assert.Equal(t, models.HintTabular, f.Hint)
		assert.True(t, strings.HasPrefix(f.Text, "Date | Merchant | Amount"))
	}
	assert.Contains(t, result.Fragments[2].Text, "Merchant 44")
	assert.Empty(t, result.HeaderText)
}

func TestSegmentCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	s := New(&MockPDFExtractor{}, 20, 1, &logging.MockLogger{})
	result, err := s.Segment(path)
	require.NoError(t, err)
	assert.Empty(t, result.Fragments)
}

func TestSegmentUnsupportedExtension(t *testing.T) {
	s := New(&MockPDFExtractor{}, 20, 1, &logging.MockLogger{})

	_, err := s.Segment("statement.xlsx")
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestExtractTableRowsFiltering(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		expected int
	}{
		{
			name:     "header row dropped",
			page:     "Txn Date      Amount\n01/02/2024    250.00",
			expected: 1,
		},
		{
			name:     "single-field lines dropped",
			page:     "STATEMENT\n01/02/2024    UBER    250.00",
			expected: 1,
		},
		{
			name:     "footer dropped",
			page:     "01/02/2024    UBER    250.00\nPage 3 of 7",
			expected: 1,
		},
		{
			name:     "pure prose yields nil",
			page:     "Dear customer, your statement is attached.",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := extractTableRows(tt.page)
			assert.Len(t, rows, tt.expected)
		})
	}
}
