package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/userplatform/platform-services/internal/api/dto"
	"github.com/userplatform/platform-services/internal/auth"
	"github.com/userplatform/platform-services/internal/service"
	"github.com/userplatform/platform-services/pkg/util"
)

// NotificationHandler exposes the notification stub endpoints.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler constructs handler.
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notificationService}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}

	return c.JSON(fiber.Map{
		"notifications": h.notifications.List(c.UserContext(), claims.UserID),
	})
}

// Recent handles GET /api/notifications/recent.
func (h *NotificationHandler) Recent(c *fiber.Ctx) error {
	sends, err := h.notifications.RecentSends(c.UserContext(), 0)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"recent": sends})
}

// Send handles POST /api/notifications/send.
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("Invalid request body")
	}

	if err := h.notifications.Send(c.UserContext(), req.UserID, req.Message); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Notification sent successfully"})
}
