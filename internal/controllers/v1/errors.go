package v1

import (
	"errors"
	"net/http"

	"github.com/financewise/backend/internal/models"
	"github.com/financewise/backend/internal/session"
	"github.com/financewise/backend/internal/store"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	var validation session.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, store.ErrNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	var load session.LoadError
	if errors.As(err, &load) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}
