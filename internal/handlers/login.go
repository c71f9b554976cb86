package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Login
// @Description Authenticate an account by username (case-insensitive) and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or missing credentials"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
			return
		}

		var missing apperrors.ValidationErrors
		if strings.TrimSpace(req.Username) == "" {
			missing = append(missing, apperrors.ValidationError{Field: "username", Reason: "is required"})
		}
		if req.Password == "" {
			missing = append(missing, apperrors.ValidationError{Field: "password", Reason: "is required"})
		}
		if len(missing) > 0 {
			writeError(w, missing)
			return
		}

		token, err := svc.Login(r.Context(), strings.TrimSpace(req.Username), req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
