package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/userplatform/platform-services/internal/api/dto"
	"github.com/userplatform/platform-services/internal/service"
	"github.com/userplatform/platform-services/pkg/util"
)

// AuthHandler exposes the registration, login and validation endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("Invalid request body")
	}

	userID, err := h.auth.Register(c.UserContext(), req.Username, req.Password, req.Email)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": userID,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("Invalid request body")
	}

	token, user, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Validate handles POST /api/validate. Resource services call this contract
// to authorize their own endpoints.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	userID, err := h.auth.Validate(c.UserContext(), c.Get("Authorization"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"valid":   true,
		"user_id": userID,
	})
}
