// Package pdfext extracts plain text from uploaded PDF resumes.
package pdfext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxPDFSize is the upload size ceiling.
const MaxPDFSize = 10 * 1024 * 1024 // 10 MB

// ExtractError represents a PDF extraction failure the caller can report
// back to the uploader.
type ExtractError struct {
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// ExtractText extracts text from PDF file bytes. It fails with a descriptive
// error if the file exceeds the size ceiling, is not a valid PDF, has no
// pages, or yields no extractable text (image-only documents).
func ExtractText(fileBytes []byte) (string, error) {
	if len(fileBytes) > MaxPDFSize {
		return "", &ExtractError{
			Message: fmt.Sprintf("PDF too large (%d bytes), max %d bytes", len(fileBytes), MaxPDFSize),
		}
	}

	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", &ExtractError{Message: "invalid PDF file", Cause: err}
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", &ExtractError{Message: "PDF has no pages"}
	}

	var parts []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the whole document.
			continue
		}
		if trimmed := strings.TrimSpace(pageText); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	fullText := strings.Join(parts, "\n\n")
	if strings.TrimSpace(fullText) == "" {
		return "", &ExtractError{Message: "could not extract any text from the PDF; it may be image-based"}
	}
	return fullText, nil
}
