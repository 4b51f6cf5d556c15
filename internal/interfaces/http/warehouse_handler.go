package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/usecase"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
)

// WarehouseHandler handles the wood stock endpoints (protected).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler builds the handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      List wood stock
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Free text over name and supplier"
// @Param        type          query  string  false  "timber|poles|hardwood|softwood"
// @Param        supplier      query  string  false  "Exact supplier name"
// @Param        availability  query  string  false  "in_stock|low_stock|out_of_stock"
// @Success      200  {object}  dto.WoodProductListResponse
// @Router       /api/wood-products [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	var f dto.WoodProductFilters
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	out, err := h.uc.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a wood product
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Wood product id"
// @Success      200  {object}  dto.WoodProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wood-products/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "wood product not found"})
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Set warehouse stock quantity
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Wood product id"
// @Param        body  body  dto.UpdateStockRequest  true  "Absolute quantity"
// @Success      200   {object}  dto.WoodProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wood-products/{id}/stock [put]
func (h *WarehouseHandler) UpdateStock(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.UpdateStock(id, in.Quantity)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity must be zero or positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "wood product not found"})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Warehouse valuation summary
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarehouseSummaryResponse
// @Router       /api/warehouse/summary [get]
func (h *WarehouseHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
