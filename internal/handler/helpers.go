package handler

import (
	"errors"
	"net/http"

	"fileshelf/internal/domain"
	"fileshelf/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &httpErr):
		if httpErr.StatusCode() >= http.StatusInternalServerError {
			// Storage failures carry I/O detail that does not belong
			// in a response body.
			httputil.RespondError(w, httpErr.StatusCode(), "internal server error")
			return
		}
		httputil.RespondError(w, httpErr.StatusCode(), err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
