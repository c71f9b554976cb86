package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
)

// TalentMapExporter returns the visualization payload of a profile.
type TalentMapExporter interface {
	ExportTalentMap(ctx context.Context, accountID uuid.UUID) (*models.TalentMap, error)
}

// NewTalentMapHandler returns an HTTP handler exporting skills and passions for the talent map.
// @Summary Export talent map
// @Description Returns the skills and passions of a profile as token lists
// @Tags profiles
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} models.TalentMap
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /profiles/{id}/talent-map [get]
// @Security BearerAuth
func NewTalentMapHandler(svc TalentMapExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := pathAccountID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		tm, err := svc.ExportTalentMap(r.Context(), accountID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tm)
	}
}
