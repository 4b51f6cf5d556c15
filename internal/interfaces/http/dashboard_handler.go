package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/woodcraft-ug/woodcraft-api/internal/application/analytics"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
)

// DashboardHandler handles the dashboard endpoint.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary returns the landing summary for the caller's role.
// GET /api/dashboard
//
// Managers get revenue figures in addition to the sales-floor numbers;
// attendants get the subset without revenue.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	role := GetRole(c)
	if role == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "MISSING_ROLE", Message: "token carries no role",
		})
	}
	summary, err := h.uc.GetSummary(role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
