package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/sbilibin2017/gw-talent-map/internal/tokens"
)

// CollaborationRequester opens collaboration requests.
type CollaborationRequester interface {
	Request(ctx context.Context, requesterID uuid.UUID, req models.CollaborationRequest) (*models.Collaboration, error)
}

// CollaborationLister lists the caller's collaboration requests.
type CollaborationLister interface {
	List(ctx context.Context, callerID uuid.UUID, direction models.CollaborationDirection) ([]models.Collaboration, error)
}

// CollaborationCreateRequest is the JSON body of a new collaboration request
// swagger:model CollaborationCreateRequest
type CollaborationCreateRequest struct {
	// Account the request is addressed to
	// required: true
	ReceiverID uuid.UUID `json:"receiver_id" swaggertype:"string" format:"uuid"`

	// required: true
	Title string `json:"title"`

	// required: true
	Description string `json:"description"`

	RequiredSkills tokens.List `json:"required_skills" swaggertype:"array,string"`
}

// NewCreateCollaborationHandler returns an HTTP handler that opens a collaboration request from the caller.
// @Summary Request a collaboration
// @Description Sends a collaboration request to another account. One request per requester and receiver pair.
// @Tags collaborations
// @Accept json
// @Produce json
// @Param request body handlers.CollaborationCreateRequest true "Collaboration request"
// @Success 201 {object} models.Collaboration
// @Failure 400 {object} handlers.ErrorResponse "Field violations"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Receiver not found"
// @Failure 409 {object} handlers.ErrorResponse "Request already exists"
// @Router /collaborations [post]
// @Security BearerAuth
func NewCreateCollaborationHandler(svc CollaborationRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}

		var req CollaborationCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
			return
		}

		c, err := svc.Request(r.Context(), caller, models.CollaborationRequest{
			ReceiverID:     req.ReceiverID,
			Title:          req.Title,
			Description:    req.Description,
			RequiredSkills: req.RequiredSkills,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, c)
	}
}

// NewListCollaborationsHandler returns an HTTP handler listing the caller's requests.
// @Summary List collaborations
// @Description Lists collaboration requests sent (default) or received by the caller, newest first
// @Tags collaborations
// @Produce json
// @Param direction query string false "sent or received"
// @Success 200 {array} models.Collaboration
// @Failure 400 {object} handlers.ErrorResponse "Unknown direction"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /collaborations [get]
// @Security BearerAuth
func NewListCollaborationsHandler(svc CollaborationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}

		direction := models.CollaborationDirection(r.URL.Query().Get("direction"))
		if direction == "" {
			direction = models.DirectionSent
		}

		list, err := svc.List(r.Context(), caller, direction)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}
