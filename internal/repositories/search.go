package repositories

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
)

// searchedColumns are matched against every search term
var searchedColumns = []string{"p.skills", "p.bio", "u.username", "u.first_name", "u.last_name"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns the profiles matching filter, capped at filter.Limit rows.
func (r *ProfileReadRepository) Search(ctx context.Context, filter models.ProfileFilter) ([]models.ProfileDB, error) {
	query, args := buildSearchQuery(filter)

	profiles := make([]models.ProfileDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &profiles, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(profiles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// buildSearchQuery renders filter into a parameterized statement
func buildSearchQuery(filter models.ProfileFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	param := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(filter.Terms) > 0 {
		var alts []string
		for _, term := range filter.Terms {
			p := param(likeEscaper.Replace(term))
			for _, col := range searchedColumns {
				alts = append(alts, col+` ILIKE '%' || `+p+` || '%' ESCAPE '\'`)
			}
		}
		conds = append(conds, "("+strings.Join(alts, " OR ")+")")
	}

	if filter.EducationLevel != nil {
		conds = append(conds, "p.education_level = "+param(string(*filter.EducationLevel)))
	}

	if filter.Language != "" {
		conds = append(conds, `p.languages ILIKE '%' || `+param(likeEscaper.Replace(filter.Language))+` || '%' ESCAPE '\'`)
	}

	if filter.ValidatedOnly {
		conds = append(conds, "p.is_validated")
	}

	if filter.ExcludeUserID != nil {
		conds = append(conds, "p.user_id <> "+param(*filter.ExcludeUserID))
	}

	var sb strings.Builder
	sb.WriteString(profileSelect)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	switch filter.Sort {
	case models.SortNewest:
		sb.WriteString(" ORDER BY u.created_at DESC, p.profile_id ASC")
	case models.SortOldest:
		sb.WriteString(" ORDER BY u.created_at ASC, p.profile_id ASC")
	default:
		sb.WriteString(" ORDER BY p.profile_id ASC")
	}

	limit := filter.Limit
	if limit <= 0 || limit > models.SearchResultCap {
		limit = models.SearchResultCap
	}
	sb.WriteString(" LIMIT " + param(limit))

	return sb.String(), args
}
