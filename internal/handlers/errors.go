package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/middlewares"
)

// ErrorResponse is the body of every non-2xx reply
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: validation failed
	Error string `json:"error"`

	// Field violations, present on 400 responses
	Fields []apperrors.ValidationError `json:"fields,omitempty"`
}

const (
	msgInvalidBody  = "invalid request body"
	msgUnauthorized = "Unauthorized"
	msgInternal     = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a workflow error onto its HTTP status
func writeError(w http.ResponseWriter, err error) {
	if verrs, ok := apperrors.AsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: verrs})
		return
	}

	switch {
	case apperrors.IsConflict(err, ""):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

// callerID returns the account id set by the auth middleware, replying 401 when absent
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msgUnauthorized})
	}
	return id, ok
}

// pathAccountID parses the {id} URL parameter, replying 400 when malformed
func pathAccountID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, apperrors.Invalid("id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
