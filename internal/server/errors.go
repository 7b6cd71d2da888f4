package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-navigator/internal/pdfext"
	"github.com/jonathan/career-navigator/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Client mistakes (bad input, adapt before generate, unreadable PDFs)
// map to 400; everything else is treated as internal.
func HTTPStatus(err error) int {
	var extractErr *pdfext.ExtractError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, pipeline.ErrNoPlan):
		return http.StatusBadRequest
	case errors.As(err, &extractErr):
		return http.StatusBadRequest
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
