package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/sales"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
)

// SalesHandler handles quoting and checkout (protected).
type SalesHandler struct {
	uc *sales.CheckoutUseCase
}

// NewSalesHandler builds the handler.
func NewSalesHandler(uc *sales.CheckoutUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Quote godoc
// @Summary      Price a cart
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Cart items and delivery flag"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/quote [post]
func (h *SalesHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Quote(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Complete a sale
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompleteSaleRequest  true  "Customer, cart and payment"
// @Success      201   {object}  dto.CompleteSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	attendant := sales.Attendant{ID: GetUserID(c), Name: GetUserName(c)}
	out, err := h.uc.Complete(attendant, in)
	if err != nil {
		if err == domain.ErrMissingField {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer name and phone are required"})
		}
		if err == domain.ErrEmptyCart {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cart is empty"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid payment type"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Sales history (most recent first)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Today's sales stats
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TodayStatsResponse
// @Router       /api/sales/today [get]
func (h *SalesHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.TodayStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
