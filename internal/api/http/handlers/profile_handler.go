package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/userplatform/platform-services/internal/api/dto"
	"github.com/userplatform/platform-services/internal/auth"
	"github.com/userplatform/platform-services/internal/service"
	"github.com/userplatform/platform-services/pkg/util"
)

// ProfileHandler exposes the caller's own profile.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profileService}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}

	user, err := h.profiles.Get(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"status":     user.Status,
		"created_at": user.CreatedAt.Format(time.RFC3339),
	})
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("Invalid request body")
	}

	if err := h.profiles.UpdateEmail(c.UserContext(), claims.UserID, req.Email); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully"})
}
