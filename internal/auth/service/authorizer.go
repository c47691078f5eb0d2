package service

import (
	"strings"

	"github.com/Tarunamathi/lms-auth-service/internal/auth/domain"
	autherror "github.com/Tarunamathi/lms-auth-service/internal/errors"
	"github.com/Tarunamathi/lms-auth-service/pkg/constant"
)

// RequireRole is the single place role labels are compared. Comparison is
// case-insensitive and does not trim whitespace. A nil identity means the
// caller was never authenticated, which is distinct from holding the wrong
// role.
func RequireRole(id *domain.Identity, role string) error {
	if id == nil {
		return autherror.ErrUnauthorized
	}
	if !strings.EqualFold(id.Role, role) {
		return autherror.ErrForbidden
	}
	return nil
}

func RequireAdmin(id *domain.Identity) error {
	return RequireRole(id, constant.RoleAdmin)
}
