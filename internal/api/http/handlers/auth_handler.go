package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-dashboard/internal/api/dto"
	"github.com/spec-kit/admin-dashboard/internal/service"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// AuthHandler exposes the session gate endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	session, token, exp, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"session": session,
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout. Idempotent.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Session handles GET /auth/session, restoring the persisted session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session, err := h.auth.Restore(c.UserContext())
	if err != nil {
		return err
	}
	if session == nil {
		return c.Status(http.StatusNoContent).Send(nil)
	}
	return c.JSON(fiber.Map{"data": session})
}
