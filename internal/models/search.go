package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// SearchResultCap bounds the number of profiles returned by one search.
const SearchResultCap = 200

// SortOrder selects how search results are ordered.
type SortOrder string

// Supported sort orders
const (
	SortRelevance SortOrder = "relevance" // Natural insertion order, no scoring
	SortNewest    SortOrder = "newest"    // Account creation time, descending
	SortOldest    SortOrder = "oldest"    // Account creation time, ascending
)

// ErrUnknownSortOrder is returned by ParseSortOrder for values outside the enum.
var ErrUnknownSortOrder = errors.New("unknown sort order")

// ParseSortOrder maps an empty value to SortRelevance.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortRelevance:
		return SortRelevance, nil
	case SortNewest:
		return SortNewest, nil
	case SortOldest:
		return SortOldest, nil
	default:
		return "", ErrUnknownSortOrder
	}
}

// SearchCriteria is the raw filter set received from the caller
type SearchCriteria struct {
	Q              string
	EducationLevel string
	Language       string
	SortBy         string
	ValidatedOnly  bool
}

// ProfileFilter is the parsed filter handed to the profile store
type ProfileFilter struct {
	Terms          []string        // OR-ed across skills, bio, username, first and last name
	EducationLevel *EducationLevel // Exact match when set
	Language       string          // Substring of languages when non-empty
	ValidatedOnly  bool
	ExcludeUserID  *uuid.UUID
	Sort           SortOrder
	Limit          int
}
