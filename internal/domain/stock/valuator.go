// Package stock classifies stock levels and values inventory. The low-stock
// boundary is inclusive and deliberately configurable: the showroom and the
// wood warehouse use different thresholds.
package stock

import "github.com/shopspring/decimal"

// Status is the three-valued stock classification.
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
)

// Default low-stock thresholds per context.
const (
	DefaultShowroomThreshold  = 5
	DefaultWarehouseThreshold = 10
)

// Thresholds carries the low-stock boundaries for both inventories.
type Thresholds struct {
	Showroom  int
	Warehouse int
}

// DefaultThresholds returns the defaults (5 showroom, 10 warehouse).
func DefaultThresholds() Thresholds {
	return Thresholds{Showroom: DefaultShowroomThreshold, Warehouse: DefaultWarehouseThreshold}
}

// Classify maps a quantity to a status: 0 is out of stock, anything up to and
// including threshold is low stock, above it is in stock.
func Classify(quantity, threshold int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Item is the price/quantity view of a product-like record. Showroom
// products expose Price, wood stock exposes SellingPrice; both flatten to
// this shape before valuation.
type Item struct {
	Price    decimal.Decimal
	Quantity int
}

// Valuation is the aggregate result over a sequence of items.
type Valuation struct {
	TotalValue decimal.Decimal
	InStock    int
	LowStock   int
	OutOfStock int
}

// Valuate computes total stock value (sum of price x quantity) and the
// per-status counts against the given threshold.
func Valuate(items []Item, threshold int) Valuation {
	v := Valuation{TotalValue: decimal.Zero}
	for _, it := range items {
		v.TotalValue = v.TotalValue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		switch Classify(it.Quantity, threshold) {
		case StatusOutOfStock:
			v.OutOfStock++
		case StatusLowStock:
			v.LowStock++
		default:
			v.InStock++
		}
	}
	return v
}
