package hasher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFileDeterministic(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "statement.csv")
	second := filepath.Join(dir, "renamed.csv")
	content := []byte("date,merchant,amount\n2024-01-02,UBER,150.00\n")

	require.NoError(t, os.WriteFile(first, content, 0600))
	require.NoError(t, os.WriteFile(second, content, 0600))

	h1, err := HashFile(first)
	require.NoError(t, err)
	h2, err := HashFile(second)
	require.NoError(t, err)

	// Identical bytes hash identically regardless of filename.
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestHashFileDiffersOnContent(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, []byte("alpha"), 0600))
	require.NoError(t, os.WriteFile(b, []byte("beta"), 0600))

	h1, err := HashFile(a)
	require.NoError(t, err)
	h2, err := HashFile(b)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashFileMissing(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestHashReaderLargeInput(t *testing.T) {
	// Larger than one block to exercise streaming.
	big := strings.Repeat("x", blockSize*3+17)

	h1, err := HashReader(strings.NewReader(big))
	require.NoError(t, err)
	h2, err := HashReader(strings.NewReader(big))
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
}
