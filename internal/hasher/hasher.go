// Package hasher computes content digests for ingested documents. The
// digest, not the filename, is the dedup key for the processed-file
// ledger.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// blockSize bounds memory while hashing; statements can be arbitrarily
// large and are never loaded whole.
const blockSize = 8192

// HashFile returns the hex-encoded SHA-256 digest of the file's bytes.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening file for hashing: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return HashReader(f)
}

// HashReader digests an arbitrary byte stream in fixed-size blocks.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, blockSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("error hashing content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
