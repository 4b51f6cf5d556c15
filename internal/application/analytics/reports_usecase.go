package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/report"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/repository"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/stock"
)

const defaultTopProducts = 5

// ReportsUseCase backs the manager-only reports module: overview cards,
// per-day sales, inventory valuation, product and attendant performance,
// and the export acknowledgement.
type ReportsUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	woodRepo    repository.WoodProductRepository
	thresholds  stock.Thresholds
}

// NewReportsUseCase builds the use case.
func NewReportsUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	woodRepo repository.WoodProductRepository,
	thresholds stock.Thresholds,
) *ReportsUseCase {
	return &ReportsUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		woodRepo:    woodRepo,
		thresholds:  thresholds,
	}
}

// salesInPeriod loads sales and keeps those whose day falls inside the
// inclusive ISO-date bounds. Empty bounds are unbounded.
func (uc *ReportsUseCase) salesInPeriod(period dto.ReportPeriod) ([]entity.Sale, error) {
	ptrs, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Sale, 0, len(ptrs))
	for _, s := range ptrs {
		day := s.Day()
		if period.StartDate != "" && day < period.StartDate {
			continue
		}
		if period.EndDate != "" && day > period.EndDate {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

// Overview returns the header cards: revenue, order count, average order
// and combined stock value.
func (uc *ReportsUseCase) Overview(period dto.ReportPeriod) (*dto.OverviewResponse, error) {
	sales, err := uc.salesInPeriod(period)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.inventory()
	if err != nil {
		return nil, err
	}

	out := &dto.OverviewResponse{
		TotalRevenue: report.TotalRevenue(sales),
		TotalOrders:  len(sales),
		AverageOrder: decimal.Zero,
		StockValue:   inventory.TotalValue,
	}
	if len(sales) > 0 {
		out.HasSales = true
		out.AverageOrder = out.TotalRevenue.Div(decimal.NewFromInt(int64(len(sales))))
	}
	return out, nil
}

// SalesReport returns per-day rollups for the period.
func (uc *ReportsUseCase) SalesReport(period dto.ReportPeriod) (*dto.SalesReportResponse, error) {
	sales, err := uc.salesInPeriod(period)
	if err != nil {
		return nil, err
	}
	rollups := report.SalesByDate(sales)
	rows := make([]dto.DailySalesRow, 0, len(rollups))
	for _, r := range rollups {
		rows = append(rows, dto.DailySalesRow{Date: r.Date, Sales: r.Sales, Revenue: r.Revenue})
	}
	return &dto.SalesReportResponse{
		Rows:         rows,
		TotalRevenue: report.TotalRevenue(sales),
	}, nil
}

// InventoryReport lists every product of both inventories with its value and
// stock status, plus aggregate counts.
func (uc *ReportsUseCase) InventoryReport() (*dto.InventoryReportResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	wood, err := uc.woodRepo.List()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.InventoryRow, 0, len(products)+len(wood))
	total := decimal.Zero
	low, out := 0, 0
	add := func(row dto.InventoryRow) {
		rows = append(rows, row)
		total = total.Add(row.Value)
		switch stock.Status(row.Status) {
		case stock.StatusLowStock:
			low++
		case stock.StatusOutOfStock:
			out++
		}
	}
	for _, p := range products {
		add(dto.InventoryRow{
			ID: p.ID, Name: p.Name, Kind: "showroom", Type: string(p.Type),
			Quantity:  p.StockQuantity,
			UnitPrice: p.Price,
			Value:     p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity))),
			Status:    string(stock.Classify(p.StockQuantity, uc.thresholds.Showroom)),
		})
	}
	for _, w := range wood {
		add(dto.InventoryRow{
			ID: w.ID, Name: w.Name, Kind: "warehouse", Type: string(w.Type),
			Quantity:  w.StockQuantity,
			UnitPrice: w.SellingPrice,
			Value:     w.SellingPrice.Mul(decimal.NewFromInt(int64(w.StockQuantity))),
			Status:    string(stock.Classify(w.StockQuantity, uc.thresholds.Warehouse)),
		})
	}
	return &dto.InventoryReportResponse{
		Rows:       rows,
		TotalValue: total,
		LowStock:   low,
		OutOfStock: out,
	}, nil
}

// inventory is the combined valuation used by Overview.
func (uc *ReportsUseCase) inventory() (stock.Valuation, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return stock.Valuation{}, err
	}
	wood, err := uc.woodRepo.List()
	if err != nil {
		return stock.Valuation{}, err
	}
	showroom := make([]stock.Item, 0, len(products))
	for _, p := range products {
		showroom = append(showroom, stock.Item{Price: p.Price, Quantity: p.StockQuantity})
	}
	warehouse := make([]stock.Item, 0, len(wood))
	for _, w := range wood {
		warehouse = append(warehouse, stock.Item{Price: w.SellingPrice, Quantity: w.StockQuantity})
	}
	a := stock.Valuate(showroom, uc.thresholds.Showroom)
	b := stock.Valuate(warehouse, uc.thresholds.Warehouse)
	return stock.Valuation{
		TotalValue: a.TotalValue.Add(b.TotalValue),
		InStock:    a.InStock + b.InStock,
		LowStock:   a.LowStock + b.LowStock,
		OutOfStock: a.OutOfStock + b.OutOfStock,
	}, nil
}

// ProductPerformance ranks products by revenue over the period.
func (uc *ReportsUseCase) ProductPerformance(period dto.ReportPeriod, limit int) (*dto.ProductPerformanceResponse, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	sales, err := uc.salesInPeriod(period)
	if err != nil {
		return nil, err
	}
	rollups := report.TopProducts(sales, limit)
	rows := make([]dto.ProductPerformanceRow, 0, len(rollups))
	for i, r := range rollups {
		rows = append(rows, dto.ProductPerformanceRow{
			Rank: i + 1, Name: r.Name, Quantity: r.Quantity, Revenue: r.Revenue,
		})
	}
	return &dto.ProductPerformanceResponse{Rows: rows}, nil
}

// AttendantPerformance rolls sales up per attendant, first-seen order.
func (uc *ReportsUseCase) AttendantPerformance(period dto.ReportPeriod) (*dto.AttendantPerformanceResponse, error) {
	sales, err := uc.salesInPeriod(period)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int)
	rows := make([]dto.AttendantPerformanceRow, 0)
	for _, s := range sales {
		i, ok := idx[s.AttendantID]
		if !ok {
			idx[s.AttendantID] = len(rows)
			rows = append(rows, dto.AttendantPerformanceRow{
				AttendantID:   s.AttendantID,
				AttendantName: s.AttendantName,
				Revenue:       decimal.Zero,
			})
			i = len(rows) - 1
		}
		rows[i].Sales++
		rows[i].Revenue = rows[i].Revenue.Add(s.Total)
	}
	return &dto.AttendantPerformanceResponse{Rows: rows}, nil
}

// Export acknowledges an export request without generating a document.
func (uc *ReportsUseCase) Export(in dto.ExportRequest) (*dto.ExportResponse, error) {
	format := in.Format
	if format == "" {
		format = "pdf"
	}
	if format != "pdf" && format != "excel" {
		return nil, domain.ErrInvalidInput
	}
	return &dto.ExportResponse{
		Status:  "accepted",
		Format:  format,
		Message: "Report export (" + format + ") queued",
	}, nil
}
