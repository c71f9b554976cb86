package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
)

const collaborationColumns = `collaboration_id, requester_id, receiver_id, title, description, required_skills, status, created_at, updated_at`

type CollaborationReadRepository struct {
	db *sqlx.DB
}

func NewCollaborationReadRepository(db *sqlx.DB) *CollaborationReadRepository {
	return &CollaborationReadRepository{db: db}
}

// ListByRequester returns the requests sent by the account, newest first.
func (r *CollaborationReadRepository) ListByRequester(ctx context.Context, userID uuid.UUID) ([]models.CollaborationDB, error) {
	const query = `SELECT ` + collaborationColumns + ` FROM collaborations WHERE requester_id = $1 ORDER BY created_at DESC, collaboration_id DESC`
	return r.list(ctx, query, userID)
}

// ListByReceiver returns the requests received by the account, newest first.
func (r *CollaborationReadRepository) ListByReceiver(ctx context.Context, userID uuid.UUID) ([]models.CollaborationDB, error) {
	const query = `SELECT ` + collaborationColumns + ` FROM collaborations WHERE receiver_id = $1 ORDER BY created_at DESC, collaboration_id DESC`
	return r.list(ctx, query, userID)
}

func (r *CollaborationReadRepository) list(ctx context.Context, query string, userID uuid.UUID) ([]models.CollaborationDB, error) {
	collaborations := make([]models.CollaborationDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &collaborations, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(collaborations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return collaborations, nil
}

type CollaborationWriteRepository struct {
	db *sqlx.DB
}

func NewCollaborationWriteRepository(db *sqlx.DB) *CollaborationWriteRepository {
	return &CollaborationWriteRepository{db: db}
}

// Save inserts a pending collaboration request.
// A second request between the same pair is reported as a ConflictError.
func (r *CollaborationWriteRepository) Save(ctx context.Context, c *models.CollaborationDB) error {
	const query = `
		INSERT INTO collaborations (requester_id, receiver_id, title, description, required_skills, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING collaboration_id, created_at, updated_at
	`
	if c.Status == "" {
		c.Status = models.CollaborationPending
	}
	args := []any{c.RequesterID, c.ReceiverID, c.Title, c.Description, c.RequiredSkills, string(c.Status)}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).
		Scan(&c.CollaborationID, &c.CreatedAt, &c.UpdatedAt)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", c.CollaborationID,
		"error", err,
	)

	return translateUniqueViolation(err)
}
