// Package report contains the pure aggregation services behind the dashboard
// and the reports module. Every function is a single synchronous pass over an
// in-memory collection; nothing here touches a repository.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
)

// DailyRollup summarises the sales of one calendar day.
type DailyRollup struct {
	Date    string // ISO date, e.g. "2026-08-29"
	Sales   int
	Revenue decimal.Decimal
}

// ProductRollup summarises all line items of one product across sales.
// Keyed by product name, not id: sale lines carry denormalized names and the
// source data ranks products by name.
type ProductRollup struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// SalesByDate groups sales by calendar day. The result is sparse (days
// without sales produce no entry) and ordered by first occurrence.
func SalesByDate(sales []entity.Sale) []DailyRollup {
	idx := make(map[string]int, len(sales))
	out := make([]DailyRollup, 0, len(sales))
	for _, s := range sales {
		day := s.Day()
		i, ok := idx[day]
		if !ok {
			idx[day] = len(out)
			out = append(out, DailyRollup{Date: day, Revenue: decimal.Zero})
			i = len(out) - 1
		}
		out[i].Sales++
		out[i].Revenue = out[i].Revenue.Add(s.Total)
	}
	return out
}

// SalesByProduct flattens every sale's line items and groups them by product
// name, summing quantity and revenue. Ordered by first occurrence.
func SalesByProduct(sales []entity.Sale) []ProductRollup {
	idx := make(map[string]int)
	var out []ProductRollup
	for _, s := range sales {
		for _, line := range s.Lines {
			i, ok := idx[line.ProductName]
			if !ok {
				idx[line.ProductName] = len(out)
				out = append(out, ProductRollup{Name: line.ProductName, Revenue: decimal.Zero})
				i = len(out) - 1
			}
			out[i].Quantity += line.Quantity
			out[i].Revenue = out[i].Revenue.Add(line.Total)
		}
	}
	return out
}

// TopProducts returns the first n product rollups ordered by revenue
// descending. Ties keep first-seen order (stable sort).
func TopProducts(sales []entity.Sale, n int) []ProductRollup {
	rollups := SalesByProduct(sales)
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Revenue.GreaterThan(rollups[j].Revenue)
	})
	if n >= 0 && n < len(rollups) {
		rollups = rollups[:n]
	}
	return rollups
}

// TotalRevenue sums the totals of all sales.
func TotalRevenue(sales []entity.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total)
	}
	return sum
}
