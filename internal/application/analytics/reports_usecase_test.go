package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/analytics"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/stock"
	"github.com/woodcraft-ug/woodcraft-api/internal/storage/memory"
)

func newReports(t *testing.T) *analytics.ReportsUseCase {
	t.Helper()
	store := memory.New()
	return analytics.NewReportsUseCase(store.Sales(), store.Products(), store.WoodProducts(), stock.DefaultThresholds())
}

func isoDaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func TestOverview_FixtureTotals(t *testing.T) {
	uc := newReports(t)

	out, err := uc.Overview(dto.ReportPeriod{})
	require.NoError(t, err)

	assert.True(t, out.HasSales)
	assert.Equal(t, 5, out.TotalOrders)
	assert.True(t, decimal.NewFromInt(4230750).Equal(out.TotalRevenue))
	assert.True(t, decimal.NewFromInt(846150).Equal(out.AverageOrder))
	assert.True(t, decimal.NewFromInt(31490000).Equal(out.StockValue),
		"showroom 21,140,000 + warehouse 10,350,000")
}

func TestOverview_EmptyPeriodHasNoSales(t *testing.T) {
	uc := newReports(t)

	// A window far in the past contains no fixture sales.
	out, err := uc.Overview(dto.ReportPeriod{StartDate: "2000-01-01", EndDate: "2000-01-31"})
	require.NoError(t, err)

	assert.False(t, out.HasSales)
	assert.Equal(t, 0, out.TotalOrders)
	assert.True(t, out.AverageOrder.IsZero(), "empty period must not divide by zero")
}

func TestSalesReport_TotalPreserving(t *testing.T) {
	uc := newReports(t)

	out, err := uc.SalesReport(dto.ReportPeriod{})
	require.NoError(t, err)

	// Fixtures span 4 distinct days (two sales share one day).
	assert.Len(t, out.Rows, 4)

	sum := decimal.Zero
	count := 0
	for _, row := range out.Rows {
		sum = sum.Add(row.Revenue)
		count += row.Sales
	}
	assert.True(t, sum.Equal(out.TotalRevenue), "per-day revenue must sum to the grand total")
	assert.Equal(t, 5, count)
}

func TestSalesReport_PeriodFilterIsInclusive(t *testing.T) {
	uc := newReports(t)

	day := isoDaysAgo(1) // sale-002's day
	out, err := uc.SalesReport(dto.ReportPeriod{StartDate: day, EndDate: day})
	require.NoError(t, err)

	require.Len(t, out.Rows, 1)
	assert.Equal(t, day, out.Rows[0].Date)
	assert.True(t, decimal.NewFromInt(950000).Equal(out.TotalRevenue))
}

func TestInventoryReport_CountsAndValue(t *testing.T) {
	uc := newReports(t)

	out, err := uc.InventoryReport()
	require.NoError(t, err)

	assert.Len(t, out.Rows, 11)
	assert.Equal(t, 3, out.LowStock, "prod-001, prod-003 and wood-003")
	assert.Equal(t, 2, out.OutOfStock, "prod-006 and wood-004")
	assert.True(t, decimal.NewFromInt(31490000).Equal(out.TotalValue))

	for _, row := range out.Rows {
		expected := row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		assert.True(t, expected.Equal(row.Value), "row value must be price x quantity: %s", row.ID)
	}
}

func TestInventoryReport_UsesPerKindThresholds(t *testing.T) {
	uc := newReports(t)

	out, err := uc.InventoryReport()
	require.NoError(t, err)

	status := map[string]string{}
	for _, row := range out.Rows {
		status[row.ID] = row.Status
	}
	// 8 pieces is low for the warehouse (threshold 10) but would be fine
	// in the showroom (threshold 5).
	assert.Equal(t, "low_stock", status["wood-003"])
	assert.Equal(t, "in_stock", status["prod-002"])
}

func TestProductPerformance_RanksByRevenue(t *testing.T) {
	uc := newReports(t)

	out, err := uc.ProductPerformance(dto.ReportPeriod{}, 3)
	require.NoError(t, err)

	require.Len(t, out.Rows, 3)
	assert.Equal(t, 1, out.Rows[0].Rank)
	assert.Equal(t, "6-Seater Dining Table", out.Rows[0].Name)
	assert.Equal(t, "Mahogany Double Bed", out.Rows[1].Name)
	assert.Equal(t, "Dining Chair", out.Rows[2].Name)
	assert.True(t, decimal.NewFromInt(765000).Equal(out.Rows[2].Revenue))
}

func TestAttendantPerformance_RollsUpPerAttendant(t *testing.T) {
	uc := newReports(t)

	out, err := uc.AttendantPerformance(dto.ReportPeriod{})
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	byName := map[string]dto.AttendantPerformanceRow{}
	for _, row := range out.Rows {
		byName[row.AttendantName] = row
	}

	peter := byName["Peter Okello"]
	assert.Equal(t, 3, peter.Sales)
	assert.True(t, decimal.NewFromInt(2645750).Equal(peter.Revenue))

	grace := byName["Grace Nakato"]
	assert.Equal(t, 2, grace.Sales)
	assert.True(t, decimal.NewFromInt(1585000).Equal(grace.Revenue))
}

func TestExport_AcknowledgesWithoutGenerating(t *testing.T) {
	uc := newReports(t)

	out, err := uc.Export(dto.ExportRequest{Format: "excel"})
	require.NoError(t, err)

	assert.Equal(t, "accepted", out.Status)
	assert.Equal(t, "excel", out.Format)
	assert.Contains(t, out.Message, "excel")
}

func TestExport_DefaultsToPDF(t *testing.T) {
	uc := newReports(t)

	out, err := uc.Export(dto.ExportRequest{})
	require.NoError(t, err)
	assert.Equal(t, "pdf", out.Format)
}

func TestExport_RejectsUnknownFormat(t *testing.T) {
	uc := newReports(t)

	_, err := uc.Export(dto.ExportRequest{Format: "csv"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
