package dto

import "github.com/shopspring/decimal"

// CartItemRequest one product id / quantity pair. Repeating a product id
// merges quantities server-side.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0"`
}

// QuoteRequest prices a cart without completing a sale.
type QuoteRequest struct {
	Items    []CartItemRequest `json:"items"`
	Delivery bool              `json:"delivery"`
}

// QuoteResponse the computed money breakdown.
type QuoteResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Surcharge decimal.Decimal `json:"surcharge"`
	Total     decimal.Decimal `json:"total"`
}

// CompleteSaleRequest finalizes a sale. CustomerID is optional: when set,
// the customer's purchase history is rolled forward; name and phone are
// required either way.
type CompleteSaleRequest struct {
	CustomerID      string            `json:"customer_id"`
	CustomerName    string            `json:"customer_name" validate:"required"`
	CustomerPhone   string            `json:"customer_phone" validate:"required"`
	CustomerAddress string            `json:"customer_address"`
	Items           []CartItemRequest `json:"items"`
	Delivery        bool              `json:"delivery"`
	PaymentType     string            `json:"payment_type"` // cash, cheque, overdraft
}

// SaleLineResponse one line item within a sale.
type SaleLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse a sale record.
type SaleResponse struct {
	ID                 string             `json:"id"`
	CustomerID         string             `json:"customer_id"`
	CustomerName       string             `json:"customer_name"`
	Lines              []SaleLineResponse `json:"lines"`
	Subtotal           decimal.Decimal    `json:"subtotal"`
	TransportSurcharge decimal.Decimal    `json:"transport_surcharge"`
	Total              decimal.Decimal    `json:"total"`
	PaymentType        string             `json:"payment_type"`
	Date               string             `json:"date"` // ISO date
	AttendantID        string             `json:"attendant_id"`
	AttendantName      string             `json:"attendant_name"`
	Status             string             `json:"status"`
}

// CompleteSaleResponse the created sale plus the notification text the
// dashboard shows as a toast.
type CompleteSaleResponse struct {
	Sale    SaleResponse `json:"sale"`
	Message string       `json:"message"`
}

// SaleListResponse sales history.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// TodayStatsResponse the sales-floor stat cards for the current day.
type TodayStatsResponse struct {
	Date        string          `json:"date"`
	Sales       int             `json:"sales"`
	Revenue     decimal.Decimal `json:"revenue"`
	AverageSale decimal.Decimal `json:"average_sale"`
	HasData     bool            `json:"has_data"`
}
