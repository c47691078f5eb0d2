package handler

import (
	"errors"
	"log"

	"github.com/Tarunamathi/lms-auth-service/internal/auth/domain"
	"github.com/Tarunamathi/lms-auth-service/internal/auth/service"
	autherror "github.com/Tarunamathi/lms-auth-service/internal/errors"
	"github.com/Tarunamathi/lms-auth-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

const identityLocalKey = "identity"

// RequireRole resolves the session gateway's principal header into an
// identity and enforces the role gate before the protected handler runs.
func (h *AuthHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Get(constant.IdentityHeader)

		identity, err := h.authService.Resolve(c.Context(), email)
		if err != nil {
			log.Printf("identity resolution failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}

		if err := service.RequireRole(identity, role); err != nil {
			if errors.Is(err, autherror.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(identityLocalKey, identity)

		return c.Next()
	}
}

func identityFromCtx(c *fiber.Ctx) *domain.Identity {
	identity, ok := c.Locals(identityLocalKey).(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}
