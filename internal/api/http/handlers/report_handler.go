package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/userplatform/platform-services/internal/api/dto"
	"github.com/userplatform/platform-services/internal/service"
	"github.com/userplatform/platform-services/pkg/util"
)

// ReportHandler exposes the report stub endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reportService}
}

// Generate handles POST /api/reports/generate.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.NewBadRequest("Invalid request body")
		}
	}

	report, err := h.reports.Generate(c.UserContext(), req.Type)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// List handles GET /api/reports/list.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"reports": h.reports.List(c.UserContext())})
}
