package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
)

// profileSelect reads a profile joined with its account's public fields
const profileSelect = `
	SELECT p.profile_id, p.user_id, p.education_level, p.bio,
	       p.skills, p.languages, p.passions, p.projects,
	       p.linkedin, p.github, p.youtube, p.website,
	       p.is_validated, p.validated_by, p.validated_at,
	       p.created_at, p.updated_at,
	       u.username, u.first_name, u.last_name, u.created_at AS account_created_at
	FROM profiles p
	JOIN users u ON u.user_id = p.user_id
`

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile owned by the account. Returns nil when absent.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	return getProfile(ctx, executor(ctx, r.db), profileSelect+` WHERE p.user_id = $1`, userID)
}

type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

// Save inserts a new profile and fills its generated id and timestamps.
func (r *ProfileWriteRepository) Save(ctx context.Context, p *models.ProfileDB) error {
	const query = `
		INSERT INTO profiles (
			user_id, education_level, bio, skills, languages, passions, projects,
			linkedin, github, youtube, website, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING profile_id, created_at, updated_at
	`
	args := []any{
		p.UserID, string(p.EducationLevel), p.Bio, p.Skills, p.Languages, p.Passions, p.Projects,
		p.LinkedIn, p.GitHub, p.YouTube, p.Website,
	}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).
		Scan(&p.ProfileID, &p.CreatedAt, &p.UpdatedAt)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", p.ProfileID,
		"error", err,
	)

	return err
}

// EnsureForUser creates a default profile for the account if it has none.
// A missing account is reported as a NotFoundError.
func (r *ProfileWriteRepository) EnsureForUser(ctx context.Context, userID uuid.UUID) error {
	const query = `
		INSERT INTO profiles (user_id, education_level, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	args := []any{userID, string(models.DefaultEducationLevel)}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if isForeignKeyViolation(err) {
		return apperrors.NewNotFound("account", userID)
	}
	return err
}

// GetForUpdate reads the account's profile and locks its row until the transaction ends.
// Returns nil when absent.
func (r *ProfileWriteRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	return getProfile(ctx, executor(ctx, r.db), profileSelect+` WHERE p.user_id = $1 FOR UPDATE OF p`, userID)
}

// Update persists the owner-editable fields and refreshes updated_at.
func (r *ProfileWriteRepository) Update(ctx context.Context, p *models.ProfileDB) error {
	const query = `
		UPDATE profiles
		SET education_level = $2, bio = $3, skills = $4, languages = $5, passions = $6, projects = $7,
		    linkedin = $8, github = $9, youtube = $10, website = $11, updated_at = NOW()
		WHERE profile_id = $1
		RETURNING updated_at
	`
	args := []any{
		p.ProfileID, string(p.EducationLevel), p.Bio, p.Skills, p.Languages, p.Passions, p.Projects,
		p.LinkedIn, p.GitHub, p.YouTube, p.Website,
	}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&p.UpdatedAt)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", p.UpdatedAt,
		"error", err,
	)

	return err
}

func getProfile(ctx context.Context, ex sqlx.ExtContext, query string, userID uuid.UUID) (*models.ProfileDB, error) {
	var p models.ProfileDB
	err := sqlx.GetContext(ctx, ex, &p, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", p.ProfileID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
