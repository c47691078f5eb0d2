package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tarunamathi/lms-auth-service/internal/auth/domain"
	autherror "github.com/Tarunamathi/lms-auth-service/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock's pool
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash, role, status, created_at, updated_at
		FROM users
		WHERE LOWER(email) = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetResetToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	query := `
		SELECT id, token, email, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, token)

	var t domain.PasswordResetToken
	err := row.Scan(&t.ID, &t.Token, &t.Email, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return &t, nil
}

func (r *PostgresRepository) CreateResetToken(ctx context.Context, t *domain.PasswordResetToken) error {
	query := `INSERT INTO password_reset_tokens (id, token, email, expires_at, used, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, t.ID, t.Token, t.Email, t.ExpiresAt, t.Used, t.CreatedAt)
	return err
}

// ConsumeResetToken flips the token to used and replaces the user's password
// hash inside one transaction. The token update is conditional on the token
// still being unused and unexpired, so concurrent consumers of the same token
// serialize to exactly one winner and a token cannot be redeemed past its
// expiry even if validation read it just before the deadline; losers get
// ErrInvalidOrExpiredToken and the transaction rolls back.
func (r *PostgresRepository) ConsumeResetToken(ctx context.Context, email, newHash, tokenID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE password_reset_tokens
		SET used = TRUE
		WHERE id = $1 AND used = FALSE AND expires_at > now()
	`, tokenID)
	if err != nil {
		return fmt.Errorf("failed to mark token used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrInvalidOrExpiredToken
	}

	tag, err = tx.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = now()
		WHERE LOWER(email) = LOWER($2)
	`, newHash, email)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no user row for token owner %s", email)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
