package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the counter.
const (
	PaymentCash      = "cash"
	PaymentCheque    = "cheque"
	PaymentOverdraft = "overdraft"
)

// Sale statuses.
const (
	SaleStatusCompleted = "completed"
	SaleStatusPending   = "pending"
	SaleStatusCancelled = "cancelled"
)

// ValidPaymentType reports whether p is one of the payment method constants.
func ValidPaymentType(p string) bool {
	switch p {
	case PaymentCash, PaymentCheque, PaymentOverdraft:
		return true
	}
	return false
}

// SaleLine is one product entry within a sale.
// Total is always Quantity x UnitPrice, fixed at sale time.
type SaleLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// Sale is a completed counter transaction. Customer and attendant are
// denormalized (id + name); the ids are not required to resolve anywhere.
// Total is always Subtotal + TransportSurcharge.
type Sale struct {
	ID                 string
	CustomerID         string
	CustomerName       string
	Lines              []SaleLine
	Subtotal           decimal.Decimal
	TransportSurcharge decimal.Decimal
	Total              decimal.Decimal
	PaymentType        string // cash, cheque, overdraft
	Date               time.Time
	AttendantID        string
	AttendantName      string
	Status             string // completed, pending, cancelled
}

// Day returns the calendar-day key (ISO date) used by the per-date rollups.
func (s Sale) Day() string {
	return s.Date.Format("2006-01-02")
}
