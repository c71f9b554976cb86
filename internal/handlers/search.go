package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
)

// ProfileSearcher runs a profile search.
type ProfileSearcher interface {
	Search(ctx context.Context, criteria models.SearchCriteria, exclude *uuid.UUID) ([]models.Profile, error)
}

// SearchResponse wraps the matching profiles
// swagger:model SearchResponse
type SearchResponse struct {
	Results []models.Profile `json:"results"`
	Count   int              `json:"count"`
}

// NewSearchHandler returns an HTTP handler for profile search. The caller's own profile is excluded.
// @Summary Search profiles
// @Description Keyword search over skills, bio and names, with optional education and language filters. At most 200 results.
// @Tags profiles
// @Produce json
// @Param q query string false "Keywords separated by commas, semicolons or spaces"
// @Param education_level query string false "secondary, bachelor, master, doctorate or other"
// @Param language query string false "Spoken language substring"
// @Param sort_by query string false "relevance (default), newest or oldest"
// @Param validated_only query bool false "Only reviewer validated profiles"
// @Success 200 {object} handlers.SearchResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid criteria"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profiles/search [get]
// @Security BearerAuth
func NewSearchHandler(svc ProfileSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		criteria := models.SearchCriteria{
			Q:              query.Get("q"),
			EducationLevel: query.Get("education_level"),
			Language:       query.Get("language"),
			SortBy:         query.Get("sort_by"),
		}
		if raw := query.Get("validated_only"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, apperrors.Invalid("validated_only", "must be a boolean"))
				return
			}
			criteria.ValidatedOnly = v
		}

		results, err := svc.Search(r.Context(), criteria, &caller)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SearchResponse{Results: results, Count: len(results)})
	}
}
