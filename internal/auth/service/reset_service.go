package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Tarunamathi/lms-auth-service/internal/auth/domain"
	"github.com/Tarunamathi/lms-auth-service/internal/auth/dto"
	autherror "github.com/Tarunamathi/lms-auth-service/internal/errors"
	"github.com/Tarunamathi/lms-auth-service/pkg/constant"
	"github.com/google/uuid"
)

// ResetService owns the password-reset token lifecycle: issuance, validation
// and single-use consumption.
type ResetService struct {
	store    domain.CredentialStore
	hasher   PasswordHasher
	tokenTTL time.Duration
}

func NewResetService(store domain.CredentialStore, hasher PasswordHasher, expiryMinutes int) *ResetService {
	return &ResetService{
		store:    store,
		hasher:   hasher,
		tokenTTL: time.Duration(expiryMinutes) * time.Minute,
	}
}

// IssueToken creates and persists a fresh single-use token for the user.
// Delivery of the token to the user is the mailer collaborator's job.
func (s *ResetService) IssueToken(ctx context.Context, email string) (*domain.PasswordResetToken, error) {
	if email == "" {
		return nil, autherror.ErrMissingFields
	}

	normalized := strings.ToLower(email)

	user, err := s.store.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		log.Printf("reset issue rejected: no user for email %s", normalized)
		return nil, autherror.ErrUserNotFound
	}

	value, err := generateTokenValue()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()

	// The row's email must match users.email exactly for the foreign key;
	// lowercasing is for lookups only.
	token := &domain.PasswordResetToken{
		ID:        uuid.New().String(),
		Token:     value,
		Email:     user.Email,
		ExpiresAt: now.Add(s.tokenTTL),
		Used:      false,
		CreatedAt: now,
	}

	if err := s.store.CreateResetToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	log.Printf("issued reset token for %s, expires %s", normalized, token.ExpiresAt.Format(time.RFC3339))

	return token, nil
}

// ConsumeToken redeems a token: the owning user's password is replaced and
// the token becomes permanently unusable, as one atomic unit. Every
// invalidity reason (unknown, expired, already used, lost race) surfaces as
// the same ErrInvalidOrExpiredToken so callers cannot probe token existence.
func (s *ResetService) ConsumeToken(ctx context.Context, input dto.ResetPasswordInput) error {
	if input.Token == "" || input.NewPassword == "" {
		return autherror.ErrMissingFields
	}

	record, err := s.store.GetResetToken(ctx, input.Token)
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if record == nil || !record.Consumable(time.Now()) {
		return autherror.ErrInvalidOrExpiredToken
	}

	newHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.store.ConsumeResetToken(ctx, record.Email, newHash, record.ID); err != nil {
		return err
	}

	return nil
}

func generateTokenValue() (string, error) {
	buf := make([]byte, constant.ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
