package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
)

func TestCustomers_Averages(t *testing.T) {
	m := Customers([]entity.Customer{
		{Name: "Sarah", TotalPurchases: decimal.NewFromInt(300000)},
		{Name: "James", TotalPurchases: decimal.NewFromInt(500000)},
	})

	assert.True(t, m.HasData)
	assert.Equal(t, 2, m.Count)
	assert.True(t, m.TotalRevenue.Equal(decimal.NewFromInt(800000)))
	assert.True(t, m.AveragePurchase.Equal(decimal.NewFromInt(400000)))
}

// An empty collection must yield the no-data sentinel, never a division by zero.
func TestCustomers_EmptyCollection(t *testing.T) {
	m := Customers(nil)

	assert.False(t, m.HasData)
	assert.Equal(t, 0, m.Count)
	assert.True(t, m.TotalRevenue.IsZero())
	assert.True(t, m.AveragePurchase.IsZero())
}

func TestSuppliers_AverageRatingAndCategories(t *testing.T) {
	m := Suppliers([]entity.Supplier{
		{Name: "Kampala Timber", Rating: 4.5, Products: []string{"timber", "poles"}},
		{Name: "Masaka Wood", Rating: 3.5, Products: []string{"timber", "hardwood"}},
	})

	assert.True(t, m.HasData)
	assert.Equal(t, 2, m.Count)
	assert.InDelta(t, 4.0, m.AverageRating, 1e-9)
	assert.Equal(t, 3, m.Categories)
}

func TestSuppliers_EmptyCollection(t *testing.T) {
	m := Suppliers([]entity.Supplier{})

	assert.False(t, m.HasData)
	assert.Zero(t, m.AverageRating)
}
