package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/sbilibin2017/gw-talent-map/internal/tokens"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, reg models.Registration) (*models.RegistrationResult, error)
}

// RegisterRequest represents the JSON body for account registration.
// Multi-value fields accept a comma separated string or an array of strings.
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Optional confirmation, must equal password when supplied
	PasswordConfirm *string `json:"password_confirm,omitempty"`

	// One of secondary, bachelor, master, doctorate, other
	// default: bachelor
	EducationLevel string `json:"education_level"`

	// Bio
	// required: true
	Bio string `json:"bio"`

	Skills    tokens.List `json:"skills" swaggertype:"array,string"`
	Languages tokens.List `json:"languages" swaggertype:"array,string"`
	Passions  tokens.List `json:"passions" swaggertype:"array,string"`
	Projects  tokens.List `json:"projects" swaggertype:"array,string"`

	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	YouTube  string `json:"youtube"`
	Website  string `json:"website"`
}

func (req RegisterRequest) registration() models.Registration {
	return models.Registration{
		Username:        req.Username,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Profile: models.ProfileFields{
			EducationLevel: req.EducationLevel,
			Bio:            req.Bio,
			Skills:         req.Skills,
			Languages:      req.Languages,
			Passions:       req.Passions,
			Projects:       req.Projects,
			LinkedIn:       req.LinkedIn,
			GitHub:         req.GitHub,
			YouTube:        req.YouTube,
			Website:        req.Website,
		},
	}
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates an account and its profile atomically. Username and email must be unique (case-insensitive). Returns a session token for the new account.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} models.RegistrationResult "Account registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or field violations"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
			return
		}

		res, err := svc.Register(r.Context(), req.registration())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, res)
	}
}
