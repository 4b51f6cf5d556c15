package report

import (
	"github.com/shopspring/decimal"

	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
)

// CustomerMetrics are the aggregate figures shown on the customers page.
// HasData is false for an empty collection; averages are then zero rather
// than an undefined division result.
type CustomerMetrics struct {
	Count           int
	TotalRevenue    decimal.Decimal
	AveragePurchase decimal.Decimal
	HasData         bool
}

// SupplierMetrics are the aggregate figures shown on the suppliers page.
type SupplierMetrics struct {
	Count         int
	AverageRating float64
	Categories    int // distinct supplied category names
	HasData       bool
}

// Customers computes count, revenue sum and average purchase.
func Customers(customers []entity.Customer) CustomerMetrics {
	m := CustomerMetrics{Count: len(customers), TotalRevenue: decimal.Zero, AveragePurchase: decimal.Zero}
	if m.Count == 0 {
		return m
	}
	for _, c := range customers {
		m.TotalRevenue = m.TotalRevenue.Add(c.TotalPurchases)
	}
	m.AveragePurchase = m.TotalRevenue.Div(decimal.NewFromInt(int64(m.Count))).Round(2)
	m.HasData = true
	return m
}

// Suppliers computes count, average rating and the number of distinct
// supplied categories.
func Suppliers(suppliers []entity.Supplier) SupplierMetrics {
	m := SupplierMetrics{Count: len(suppliers)}
	if m.Count == 0 {
		return m
	}
	seen := make(map[string]struct{})
	var sum float64
	for _, s := range suppliers {
		sum += s.Rating
		for _, p := range s.Products {
			seen[p] = struct{}{}
		}
	}
	m.AverageRating = sum / float64(m.Count)
	m.Categories = len(seen)
	m.HasData = true
	return m
}
