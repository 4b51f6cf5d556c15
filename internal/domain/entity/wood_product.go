package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wood stock types held in the warehouse.
const (
	WoodTypeTimber   = "timber"
	WoodTypePoles    = "poles"
	WoodTypeHardwood = "hardwood"
	WoodTypeSoftwood = "softwood"
)

// ValidWoodType reports whether t is one of the wood type constants.
func ValidWoodType(t string) bool {
	switch t {
	case WoodTypeTimber, WoodTypePoles, WoodTypeHardwood, WoodTypeSoftwood:
		return true
	}
	return false
}

// WoodProduct is raw wood stock in the warehouse. CostPrice and SellingPrice
// are always >= 0; Unit is free text ("pieces", "ft", ...).
type WoodProduct struct {
	ID            string
	Name          string
	Type          string // timber, poles, hardwood, softwood
	Supplier      string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	StockQuantity int
	Unit          string
	DateReceived  time.Time
	Description   string
}
