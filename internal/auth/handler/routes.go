package handler

import (
	"github.com/Tarunamathi/lms-auth-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/forgot-password", h.ForgotPassword)
	app.Post("/api/v1/reset-password", h.ResetPassword)
	app.Delete("/api/v1/session", h.Logout)

	// Admin-only endpoints
	admin := app.Group("/api/v1/admin", h.RequireRole(constant.RoleAdmin))
	admin.Get("/me", h.Me)
}
