// Package analytics contains the use cases behind the dashboard and the
// reports module.
package analytics

import (
	"time"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/report"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/repository"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/stock"
)

const (
	dashboardTopProducts = 5 // entries in the top-products widget
	dashboardLowStock    = 4 // entries in the low-stock widget
	dashboardRecentSales = 5 // entries in the recent-sales list
)

// DashboardUseCase builds the role-aware landing summary. The caller's
// role is an explicit parameter; revenue figures are only included for
// managers, like the source dashboard's manager-only cards.
type DashboardUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	woodRepo    repository.WoodProductRepository
	thresholds  stock.Thresholds
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	woodRepo repository.WoodProductRepository,
	thresholds stock.Thresholds,
) *DashboardUseCase {
	return &DashboardUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		woodRepo:    woodRepo,
		thresholds:  thresholds,
	}
}

// GetSummary assembles the dashboard for the given role.
func (uc *DashboardUseCase) GetSummary(role string) (*dto.DashboardResponse, error) {
	salesPtrs, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	sales := make([]entity.Sale, 0, len(salesPtrs))
	for _, s := range salesPtrs {
		sales = append(sales, *s)
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	wood, err := uc.woodRepo.List()
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	var todays []entity.Sale
	for _, s := range sales {
		if s.Day() == today {
			todays = append(todays, s)
		}
	}

	out := &dto.DashboardResponse{
		TodaySales:    len(todays),
		TotalProducts: len(products) + len(wood),
		LowStockItems: uc.lowStockItems(products, wood),
		TopProducts:   topProducts(sales),
		RecentSales:   recentSales(sales),
		Role:          role,
	}

	if role == entity.RoleManager {
		todayRevenue := report.TotalRevenue(todays)
		totalRevenue := report.TotalRevenue(sales)
		out.TodayRevenue = &todayRevenue
		out.TotalRevenue = &totalRevenue
	}
	return out, nil
}

// lowStockItems collects low and out-of-stock entries from both
// inventories, each classified against its own threshold.
func (uc *DashboardUseCase) lowStockItems(products []*entity.Product, wood []*entity.WoodProduct) []dto.LowStockItem {
	items := make([]dto.LowStockItem, 0, dashboardLowStock)
	for _, p := range products {
		st := stock.Classify(p.StockQuantity, uc.thresholds.Showroom)
		if st == stock.StatusInStock {
			continue
		}
		items = append(items, dto.LowStockItem{
			ID: p.ID, Name: p.Name, Kind: "showroom",
			Quantity: p.StockQuantity, Status: string(st),
		})
	}
	for _, w := range wood {
		st := stock.Classify(w.StockQuantity, uc.thresholds.Warehouse)
		if st == stock.StatusInStock {
			continue
		}
		items = append(items, dto.LowStockItem{
			ID: w.ID, Name: w.Name, Kind: "warehouse",
			Quantity: w.StockQuantity, Status: string(st),
		})
	}
	if len(items) > dashboardLowStock {
		items = items[:dashboardLowStock]
	}
	return items
}

func topProducts(sales []entity.Sale) []dto.TopProduct {
	rollups := report.TopProducts(sales, dashboardTopProducts)
	out := make([]dto.TopProduct, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, dto.TopProduct{Name: r.Name, Quantity: r.Quantity, Revenue: r.Revenue})
	}
	return out
}

func recentSales(sales []entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, dashboardRecentSales)
	for i := len(sales) - 1; i >= 0 && len(out) < dashboardRecentSales; i-- {
		out = append(out, saleSummary(sales[i]))
	}
	return out
}

func saleSummary(s entity.Sale) dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		})
	}
	return dto.SaleResponse{
		ID:                 s.ID,
		CustomerID:         s.CustomerID,
		CustomerName:       s.CustomerName,
		Lines:              lines,
		Subtotal:           s.Subtotal,
		TransportSurcharge: s.TransportSurcharge,
		Total:              s.Total,
		PaymentType:        s.PaymentType,
		Date:               s.Date.Format("2006-01-02"),
		AttendantID:        s.AttendantID,
		AttendantName:      s.AttendantName,
		Status:             s.Status,
	}
}
