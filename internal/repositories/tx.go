package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// Transactor runs units of work inside a database transaction
type Transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx runs fn with a context carrying the transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
// A call made while a transaction is already in ctx joins it.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err = fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}

	return nil
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor returns the transaction in ctx or db when there is none
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Unique index names declared in the schema
const (
	usernameUniqueIndex      = "users_username_lower_key"
	emailUniqueIndex         = "users_email_lower_key"
	collaborationUniqueIndex = "collaborations_requester_receiver_key"
)

// translateUniqueViolation maps a unique-index violation to the matching conflict error
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case usernameUniqueIndex:
		return apperrors.NewConflict(apperrors.ConflictUsername)
	case emailUniqueIndex:
		return apperrors.NewConflict(apperrors.ConflictEmail)
	case collaborationUniqueIndex:
		return apperrors.NewConflict(apperrors.ConflictCollaboration)
	default:
		return err
	}
}

// isForeignKeyViolation reports whether err is a violated foreign key
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
