package domain

//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/Tarunamathi/lms-auth-service/internal/auth/domain CredentialStore

import "context"

// CredentialStore is the persistence collaborator for users and reset tokens.
// Lookup methods return (nil, nil) when the row is absent.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetResetToken(ctx context.Context, token string) (*PasswordResetToken, error)
	CreateResetToken(ctx context.Context, t *PasswordResetToken) error
	// ConsumeResetToken replaces the user's password hash and flips the token
	// to used in a single transaction. The token update is conditional on
	// used=false; losing that race returns ErrInvalidOrExpiredToken.
	ConsumeResetToken(ctx context.Context, email, newHash, tokenID string) error
}
