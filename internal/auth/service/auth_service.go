package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Tarunamathi/lms-auth-service/internal/auth/domain"
	"github.com/Tarunamathi/lms-auth-service/internal/auth/dto"
	autherror "github.com/Tarunamathi/lms-auth-service/internal/errors"
)

type AuthService struct {
	store  domain.CredentialStore
	hasher PasswordHasher
}

func NewAuthService(store domain.CredentialStore, hasher PasswordHasher) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
	}
}

// Login verifies an email+password pair and returns the identity descriptor.
// It mints no session; that belongs to the caller.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.IdentityOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrMissingFields
	}

	email := strings.ToLower(input.Email)

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		log.Printf("login rejected: no user for email %s", email)
		return nil, autherror.ErrUserNotFound
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		log.Printf("login rejected: password mismatch for %s", email)
		return nil, autherror.ErrInvalidCredentials
	}

	return &dto.IdentityOutput{
		Email:       user.Email,
		Role:        user.Role,
		DisplayName: user.DisplayName(),
	}, nil
}

// Resolve builds the identity descriptor for an already-established session
// principal. A blank email or unknown user resolves to no identity.
func (s *AuthService) Resolve(ctx context.Context, email string) (*domain.Identity, error) {
	if email == "" {
		return nil, nil
	}

	user, err := s.store.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	return &domain.Identity{
		Email:       user.Email,
		Role:        user.Role,
		DisplayName: user.DisplayName(),
	}, nil
}
