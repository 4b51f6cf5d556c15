package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func saleOn(day string, total int64, lines ...entity.SaleLine) entity.Sale {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return entity.Sale{
		ID:     "s-" + day,
		Lines:  lines,
		Total:  d(total),
		Date:   t,
		Status: entity.SaleStatusCompleted,
	}
}

func line(name string, qty int, unitPrice int64) entity.SaleLine {
	return entity.SaleLine{
		ProductName: name,
		Quantity:    qty,
		UnitPrice:   d(unitPrice),
		Total:       d(unitPrice * int64(qty)),
	}
}

func TestSalesByDate_GroupsByCalendarDay(t *testing.T) {
	sales := []entity.Sale{
		saleOn("2026-08-01", 100000),
		saleOn("2026-08-02", 250000),
		saleOn("2026-08-01", 50000),
	}

	rollups := SalesByDate(sales)
	require.Len(t, rollups, 2)

	assert.Equal(t, "2026-08-01", rollups[0].Date)
	assert.Equal(t, 2, rollups[0].Sales)
	assert.True(t, rollups[0].Revenue.Equal(d(150000)), "day 1 revenue: %s", rollups[0].Revenue)

	assert.Equal(t, "2026-08-02", rollups[1].Date)
	assert.Equal(t, 1, rollups[1].Sales)
	assert.True(t, rollups[1].Revenue.Equal(d(250000)))
}

func TestSalesByDate_IsSparse(t *testing.T) {
	rollups := SalesByDate([]entity.Sale{saleOn("2026-08-01", 1000), saleOn("2026-08-05", 2000)})
	// no entries for the days in between
	require.Len(t, rollups, 2)
}

// The per-date rollups must preserve the grand total over the whole sequence.
func TestSalesByDate_TotalPreserving(t *testing.T) {
	sales := []entity.Sale{
		saleOn("2026-08-01", 120000),
		saleOn("2026-08-01", 80000),
		saleOn("2026-08-03", 330000),
		saleOn("2026-08-07", 45000),
	}

	perDate := decimal.Zero
	for _, r := range SalesByDate(sales) {
		perDate = perDate.Add(r.Revenue)
	}
	assert.True(t, perDate.Equal(TotalRevenue(sales)),
		"sum of per-date revenue must equal sum of sale totals")
	assert.True(t, perDate.Equal(d(575000)))
}

func TestSalesByProduct_KeysByNameAcrossSales(t *testing.T) {
	sales := []entity.Sale{
		saleOn("2026-08-01", 0, line("Mahogany Bed", 1, 800000), line("Dining Chair", 4, 50000)),
		saleOn("2026-08-02", 0, line("Mahogany Bed", 2, 800000)),
	}

	rollups := SalesByProduct(sales)
	require.Len(t, rollups, 2)

	assert.Equal(t, "Mahogany Bed", rollups[0].Name)
	assert.Equal(t, 3, rollups[0].Quantity)
	assert.True(t, rollups[0].Revenue.Equal(d(2400000)))

	assert.Equal(t, "Dining Chair", rollups[1].Name)
	assert.Equal(t, 4, rollups[1].Quantity)
	assert.True(t, rollups[1].Revenue.Equal(d(200000)))
}

func TestTopProducts_OrdersByRevenueDescending(t *testing.T) {
	// five distinct revenues: 50, 10, 30, 20, 40
	sales := []entity.Sale{
		saleOn("2026-08-01", 0,
			line("A", 1, 50),
			line("B", 1, 10),
			line("C", 1, 30),
			line("D", 1, 20),
			line("E", 1, 40),
		),
	}

	top := TopProducts(sales, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"A", "E", "C"}, []string{top[0].Name, top[1].Name, top[2].Name})
	assert.True(t, top[0].Revenue.Equal(d(50)))
	assert.True(t, top[1].Revenue.Equal(d(40)))
	assert.True(t, top[2].Revenue.Equal(d(30)))
}

func TestTopProducts_NLargerThanCollection(t *testing.T) {
	sales := []entity.Sale{saleOn("2026-08-01", 0, line("A", 1, 50))}
	assert.Len(t, TopProducts(sales, 5), 1)
}

func TestTopProducts_TiesKeepFirstSeenOrder(t *testing.T) {
	sales := []entity.Sale{
		saleOn("2026-08-01", 0, line("First", 1, 100), line("Second", 1, 100)),
	}
	top := TopProducts(sales, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "First", top[0].Name)
	assert.Equal(t, "Second", top[1].Name)
}
