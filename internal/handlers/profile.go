package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/sbilibin2017/gw-talent-map/internal/tokens"
)

// ProfileGetter reads a single profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Profile, error)
}

// ProfileEditor applies owner edits to a profile.
type ProfileEditor interface {
	EditProfile(ctx context.Context, callerID, targetID uuid.UUID, upd models.ProfileUpdate) (*models.Profile, error)
}

// ProfileUpdateRequest is a partial profile update. Omitted fields keep their stored values.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	EducationLevel *string     `json:"education_level,omitempty"`
	Bio            *string     `json:"bio,omitempty"`
	Skills         tokens.List `json:"skills,omitempty" swaggertype:"array,string"`
	Languages      tokens.List `json:"languages,omitempty" swaggertype:"array,string"`
	Passions       tokens.List `json:"passions,omitempty" swaggertype:"array,string"`
	Projects       tokens.List `json:"projects,omitempty" swaggertype:"array,string"`
	LinkedIn       *string     `json:"linkedin,omitempty"`
	GitHub         *string     `json:"github,omitempty"`
	YouTube        *string     `json:"youtube,omitempty"`
	Website        *string     `json:"website,omitempty"`
}

func (req ProfileUpdateRequest) update() models.ProfileUpdate {
	return models.ProfileUpdate{
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
	}
}

// NewGetProfileHandler returns an HTTP handler that reads a profile by account id.
// @Summary Get profile
// @Description Returns the profile of the given account
// @Tags profiles
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} models.Profile
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /profiles/{id} [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := pathAccountID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		p, err := svc.GetProfile(r.Context(), accountID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

// NewEditProfileHandler returns an HTTP handler that edits the profile in the {id} path parameter.
// Only the owner may edit.
// @Summary Edit profile
// @Description Applies a partial update to the profile of the given account. Forbidden unless it belongs to the caller.
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param request body handlers.ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 400 {object} handlers.ErrorResponse "Field violations"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Router /profiles/{id} [put]
// @Security BearerAuth
func NewEditProfileHandler(svc ProfileEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		target, ok := pathAccountID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}
		editProfile(w, r, svc, caller, target)
	}
}

// NewEditOwnProfileHandler returns an HTTP handler that edits the caller's own profile.
// @Summary Edit own profile
// @Description Applies a partial update to the caller's profile, creating it with defaults if missing
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body handlers.ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 400 {object} handlers.ErrorResponse "Field violations"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile [put]
// @Security BearerAuth
func NewEditOwnProfileHandler(svc ProfileEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		editProfile(w, r, svc, caller, caller)
	}
}

func editProfile(w http.ResponseWriter, r *http.Request, svc ProfileEditor, caller, target uuid.UUID) {
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	p, err := svc.EditProfile(r.Context(), caller, target, req.update())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}
