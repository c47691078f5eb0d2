package service_test

import (
	"testing"

	"github.com/Tarunamathi/lms-auth-service/internal/auth/domain"
	"github.com/Tarunamathi/lms-auth-service/internal/auth/service"
	autherror "github.com/Tarunamathi/lms-auth-service/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity *domain.Identity
		wantErr  error
	}{
		{
			name:     "lowercase admin",
			identity: &domain.Identity{Email: "a@x.com", Role: "admin"},
			wantErr:  nil,
		},
		{
			name:     "mixed case admin",
			identity: &domain.Identity{Email: "a@x.com", Role: "Admin"},
			wantErr:  nil,
		},
		{
			name:     "uppercase admin",
			identity: &domain.Identity{Email: "a@x.com", Role: "ADMIN"},
			wantErr:  nil,
		},
		{
			name:     "trainer forbidden",
			identity: &domain.Identity{Email: "t@x.com", Role: "Trainer"},
			wantErr:  autherror.ErrForbidden,
		},
		{
			name:     "coordinator forbidden",
			identity: &domain.Identity{Email: "c@x.com", Role: "coordinator"},
			wantErr:  autherror.ErrForbidden,
		},
		{
			name:     "empty role forbidden",
			identity: &domain.Identity{Email: "e@x.com"},
			wantErr:  autherror.ErrForbidden,
		},
		{
			// Whitespace is not trimmed, only case is normalized.
			name:     "trailing space forbidden",
			identity: &domain.Identity{Email: "a@x.com", Role: "ADMIN "},
			wantErr:  autherror.ErrForbidden,
		},
		{
			name:     "nil identity unauthorized",
			identity: nil,
			wantErr:  autherror.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.RequireAdmin(tt.identity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequireRole_OtherRoles(t *testing.T) {
	trainer := &domain.Identity{Email: "t@x.com", Role: "Trainer"}

	assert.NoError(t, service.RequireRole(trainer, "trainer"))
	assert.ErrorIs(t, service.RequireRole(trainer, "trainee"), autherror.ErrForbidden)
	assert.ErrorIs(t, service.RequireRole(nil, "trainer"), autherror.ErrUnauthorized)
}
