package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest input for adding a customer. Name and phone are the
// only required fields.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerResponse output for a customer.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	LastPurchase   string          `json:"last_purchase,omitempty"` // ISO date
}

// CustomerListResponse customer listing.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}

// CustomerMetricsResponse aggregate customer figures. HasData is false for
// an empty collection; averages are then zero, not NaN.
type CustomerMetricsResponse struct {
	Count           int             `json:"count"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AveragePurchase decimal.Decimal `json:"average_purchase"`
	HasData         bool            `json:"has_data"`
}
