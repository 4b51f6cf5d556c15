package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a retail customer. TotalPurchases accumulates across sales;
// LastPurchase is nil until the first completed sale.
type Customer struct {
	ID             string
	Name           string
	Phone          string
	Email          string // optional
	Address        string
	TotalPurchases decimal.Decimal
	LastPurchase   *time.Time
}
