// Package sales implements the counter workflow: pricing a cart and
// completing a sale against the product catalog.
package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/cart"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/report"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/repository"
	"github.com/woodcraft-ug/woodcraft-api/pkg/currency"
)

// Attendant identifies who is operating the counter; it comes from the
// request's token, never from ambient state.
type Attendant struct {
	ID   string
	Name string
}

// CheckoutUseCase prices carts and completes sales. Both the showroom and
// the warehouse sell over the counter, so the catalog spans both.
type CheckoutUseCase struct {
	products     repository.ProductRepository
	woodProducts repository.WoodProductRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	surchargePct decimal.Decimal
}

// NewCheckoutUseCase builds the use case. surchargePct is the delivery
// surcharge percentage (5 means 5%).
func NewCheckoutUseCase(
	products repository.ProductRepository,
	woodProducts repository.WoodProductRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	surchargePct int,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		products:     products,
		woodProducts: woodProducts,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		surchargePct: decimal.NewFromInt(int64(surchargePct)),
	}
}

// catalogEntry carries the denormalized name alongside the price.
type catalogEntry struct {
	name  string
	price decimal.Decimal
}

func (uc *CheckoutUseCase) catalog() (map[string]catalogEntry, map[string]decimal.Decimal, error) {
	entries := make(map[string]catalogEntry)
	products, err := uc.products.List()
	if err != nil {
		return nil, nil, err
	}
	for _, p := range products {
		entries[p.ID] = catalogEntry{name: p.Name, price: p.Price}
	}
	wood, err := uc.woodProducts.List()
	if err != nil {
		return nil, nil, err
	}
	for _, w := range wood {
		entries[w.ID] = catalogEntry{name: w.Name, price: w.SellingPrice}
	}
	prices := make(map[string]decimal.Decimal, len(entries))
	for id, e := range entries {
		prices[id] = e.price
	}
	return entries, prices, nil
}

func buildCart(items []dto.CartItemRequest) *cart.Cart {
	c := cart.New()
	for _, it := range items {
		c.Add(it.ProductID, it.Quantity)
	}
	return c
}

// Quote prices a cart without completing a sale. Ids missing from the
// catalog price at zero.
func (uc *CheckoutUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	_, prices, err := uc.catalog()
	if err != nil {
		return nil, err
	}
	t := buildCart(in.Items).Totals(prices, in.Delivery, uc.surchargePct)
	return &dto.QuoteResponse{Subtotal: t.Subtotal, Surcharge: t.Surcharge, Total: t.Total}, nil
}

// Complete validates and finalizes a sale. Missing customer name or phone,
// or an empty cart, block the submission without mutating anything. On
// success the sale is recorded and, when the customer id resolves, the
// customer's purchase history is rolled forward.
func (uc *CheckoutUseCase) Complete(attendant Attendant, in dto.CompleteSaleRequest) (*dto.CompleteSaleResponse, error) {
	if in.CustomerName == "" || in.CustomerPhone == "" {
		return nil, domain.ErrMissingField
	}
	c := buildCart(in.Items)
	if c.Empty() {
		return nil, domain.ErrEmptyCart
	}
	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = entity.PaymentCash
	}
	if !entity.ValidPaymentType(paymentType) {
		return nil, domain.ErrInvalidInput
	}

	entries, prices, err := uc.catalog()
	if err != nil {
		return nil, err
	}
	totals := c.Totals(prices, in.Delivery, uc.surchargePct)

	lines := make([]entity.SaleLine, 0, c.Len())
	for _, l := range c.Lines() {
		e := entries[l.ProductID] // unknown id keeps the line at price zero
		lines = append(lines, entity.SaleLine{
			ProductID:   l.ProductID,
			ProductName: e.name,
			Quantity:    l.Quantity,
			UnitPrice:   e.price,
			Total:       e.price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:                 uuid.New().String(),
		CustomerID:         in.CustomerID,
		CustomerName:       in.CustomerName,
		Lines:              lines,
		Subtotal:           totals.Subtotal,
		TransportSurcharge: totals.Surcharge,
		Total:              totals.Total,
		PaymentType:        paymentType,
		Date:               now,
		AttendantID:        attendant.ID,
		AttendantName:      attendant.Name,
		Status:             entity.SaleStatusCompleted,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	// Roll the customer's totals forward when the reference resolves; an
	// unresolved id is tolerated, matching the denormalized data model.
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err == nil && customer != nil {
			customer.TotalPurchases = customer.TotalPurchases.Add(sale.Total)
			customer.LastPurchase = &now
			_ = uc.customerRepo.Update(customer)
		}
	}

	return &dto.CompleteSaleResponse{
		Sale:    *toSaleResponse(sale),
		Message: "Sale of " + currency.UGX(sale.Total) + " completed successfully",
	}, nil
}

// List returns the sales history, most recent first.
func (uc *CheckoutUseCase) List() (*dto.SaleListResponse, error) {
	all, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		items = append(items, *toSaleResponse(all[i]))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// TodayStats computes the sales-floor cards: count, revenue and average
// sale for the current calendar day.
func (uc *CheckoutUseCase) TodayStats() (*dto.TodayStatsResponse, error) {
	all, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	var todays []entity.Sale
	for _, s := range all {
		if s.Day() == today {
			todays = append(todays, *s)
		}
	}
	out := &dto.TodayStatsResponse{
		Date:        today,
		Sales:       len(todays),
		Revenue:     report.TotalRevenue(todays),
		AverageSale: decimal.Zero,
	}
	if len(todays) > 0 {
		out.AverageSale = out.Revenue.Div(decimal.NewFromInt(int64(len(todays)))).Round(0)
		out.HasData = true
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		})
	}
	return &dto.SaleResponse{
		ID:                 s.ID,
		CustomerID:         s.CustomerID,
		CustomerName:       s.CustomerName,
		Lines:              lines,
		Subtotal:           s.Subtotal,
		TransportSurcharge: s.TransportSurcharge,
		Total:              s.Total,
		PaymentType:        s.PaymentType,
		Date:               s.Date.Format("2006-01-02"),
		AttendantID:        s.AttendantID,
		AttendantName:      s.AttendantName,
		Status:             s.Status,
	}
}
