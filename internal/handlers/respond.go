package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
	"github.com/Fid-Wiz/timecapsule/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError maps a service error onto the HTTP taxonomy: validation errors
// and missing resources are client errors and never logged as server faults;
// everything else is an opaque server fault recorded for operator visibility.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.WarnContext(ctx, "request rejected", "field", validationErr.Field, "reason", validationErr.Message)
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
	case errors.Is(err, service.ErrNotFound):
		logger.WarnContext(ctx, "resource not found", "error", err)
		writeJSON(ctx, w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		logger.WarnContext(ctx, "unauthorized request", "error", err)
		writeJSON(ctx, w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrNotConfigured):
		logger.ErrorContext(ctx, "collaborator not configured", "error", err)
		writeJSON(ctx, w, http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(ctx, "request failed", "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, ErrorResponse{Error: "server error"})
	}
}
