package segmenter

import (
	"fmt"
	"os"
	"os/exec"
)

// PDFExtractor extracts raw text from a PDF file. The interface exists
// so tests can run without pdftotext installed.
type PDFExtractor interface {
	// ExtractText returns the text content of the PDF at the given path,
	// with pages separated by form-feed characters.
	ExtractText(pdfPath string) (string, error)
}

// RealPDFExtractor implements PDFExtractor using the pdftotext command.
// This is the production implementation and requires poppler-utils.
type RealPDFExtractor struct{}

// NewRealPDFExtractor creates a new RealPDFExtractor instance.
func NewRealPDFExtractor() *RealPDFExtractor {
	return &RealPDFExtractor{}
}

// ExtractText runs pdftotext in layout mode so column alignment
// survives, which is what the table-row detection relies on.
func (e *RealPDFExtractor) ExtractText(pdfPath string) (string, error) {
	tempFile, err := os.CreateTemp("", "*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary text file: %w", err)
	}
	tempPath := tempFile.Name()
	_ = tempFile.Close()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	cmd := exec.Command("pdftotext", "-layout", pdfPath, tempPath)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}

	content, err := os.ReadFile(tempPath)
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}
	return string(content), nil
}

// MockPDFExtractor implements PDFExtractor for testing, returning
// predefined text instead of shelling out.
type MockPDFExtractor struct {
	MockText string
	MockErr  error
}

// ExtractText returns the predefined mock text or error.
func (e *MockPDFExtractor) ExtractText(string) (string, error) {
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
