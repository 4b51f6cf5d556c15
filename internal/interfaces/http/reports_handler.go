package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/woodcraft-ug/woodcraft-api/internal/application/analytics"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
)

// ReportsHandler handles the manager-only reports endpoints.
type ReportsHandler struct {
	uc *appanalytics.ReportsUseCase
}

// NewReportsHandler builds the handler.
func NewReportsHandler(uc *appanalytics.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

func reportPeriod(c *fiber.Ctx) dto.ReportPeriod {
	return dto.ReportPeriod{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}

// Overview GET /api/reports/overview
func (h *ReportsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(reportPeriod(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Sales GET /api/reports/sales
func (h *ReportsHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(reportPeriod(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Inventory GET /api/reports/inventory
func (h *ReportsHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventoryReport()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Products GET /api/reports/products?limit=5
func (h *ReportsHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.ProductPerformance(reportPeriod(c), c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Attendants GET /api/reports/attendants
func (h *ReportsHandler) Attendants(c *fiber.Ctx) error {
	out, err := h.uc.AttendantPerformance(reportPeriod(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export POST /api/reports/export
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Export(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format must be pdf or excel"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}
