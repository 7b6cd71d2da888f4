package pdfext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_TooLarge(t *testing.T) {
	data := make([]byte, MaxPDFSize+1)

	_, err := ExtractText(data)
	require.Error(t, err)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Message, "too large")
}

func TestExtractText_NotAPDF(t *testing.T) {
	_, err := ExtractText([]byte("plain text resume, not a pdf"))
	require.Error(t, err)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, err.Error(), "invalid PDF")
}

func TestExtractText_Empty(t *testing.T) {
	_, err := ExtractText(nil)
	assert.Error(t, err)
}

func TestExtractText_TruncatedHeader(t *testing.T) {
	// A correct magic number with garbage after it still fails cleanly.
	data := []byte("%PDF-1.4\n" + strings.Repeat("garbage ", 10))

	_, err := ExtractText(data)
	require.Error(t, err)

	var extractErr *ExtractError
	assert.ErrorAs(t, err, &extractErr)
}

func TestExtractError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &ExtractError{Message: "wrapped", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "wrapped")
}
