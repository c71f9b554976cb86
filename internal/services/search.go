package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/sbilibin2017/gw-talent-map/internal/tokens"
)

// ProfileSearcher runs a parsed filter against the profile store.
type ProfileSearcher interface {
	Search(ctx context.Context, filter models.ProfileFilter) ([]models.ProfileDB, error)
}

// SearchService filters profiles by free text, education level and language.
type SearchService struct {
	searcher ProfileSearcher
}

// NewSearchService creates a new SearchService.
func NewSearchService(searcher ProfileSearcher) *SearchService {
	return &SearchService{searcher: searcher}
}

// Search returns at most models.SearchResultCap profiles matching criteria.
// The profile of exclude, when set, is never part of the result.
func (s *SearchService) Search(ctx context.Context, criteria models.SearchCriteria, exclude *uuid.UUID) ([]models.Profile, error) {
	filter, errs := buildFilter(criteria, exclude)
	if errs != nil {
		return nil, errs
	}

	rows, err := s.searcher.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search profiles", "criteria", criteria, "error", err)
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, *toProfile(&rows[i]))
	}
	return profiles, nil
}

// buildFilter parses raw criteria, reporting every invalid field at once
func buildFilter(c models.SearchCriteria, exclude *uuid.UUID) (models.ProfileFilter, apperrors.ValidationErrors) {
	var errs apperrors.ValidationErrors

	filter := models.ProfileFilter{
		Terms:         tokens.SearchTerms(c.Q),
		Language:      strings.TrimSpace(c.Language),
		ValidatedOnly: c.ValidatedOnly,
		ExcludeUserID: exclude,
		Limit:         models.SearchResultCap,
	}

	if lvl := strings.TrimSpace(c.EducationLevel); lvl != "" {
		parsed, err := models.ParseEducationLevel(lvl)
		if err != nil {
			errs = append(errs, apperrors.ValidationError{Field: "education_level", Reason: "select a valid choice"})
		} else {
			filter.EducationLevel = &parsed
		}
	}

	sort, err := models.ParseSortOrder(c.SortBy)
	if err != nil {
		errs = append(errs, apperrors.ValidationError{Field: "sort_by", Reason: "must be one of relevance, newest, oldest"})
	}
	filter.Sort = sort

	if errs != nil {
		return models.ProfileFilter{}, errs
	}
	return filter, nil
}
