package usecase

import (
	"sort"
	"strings"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/repository"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/stock"
)

// WarehouseUseCase wood stock: listing with the warehouse filters, stock
// updates, and the valuation summary.
type WarehouseUseCase struct {
	repo      repository.WoodProductRepository
	threshold int // warehouse low-stock threshold
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(repo repository.WoodProductRepository, lowStockThreshold int) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, threshold: lowStockThreshold}
}

// List returns wood products matching the filters: free-text search on name
// and supplier, exact type and supplier, and stock-status availability.
func (uc *WarehouseUseCase) List(f dto.WoodProductFilters) (*dto.WoodProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WoodProductResponse, 0, len(products))
	for _, p := range products {
		if !uc.matches(p, f) {
			continue
		}
		items = append(items, *uc.toResponse(p))
	}
	return &dto.WoodProductListResponse{Items: items, Total: len(items)}, nil
}

func (uc *WarehouseUseCase) matches(p *entity.WoodProduct, f dto.WoodProductFilters) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Supplier), q) {
			return false
		}
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Supplier != "" && p.Supplier != f.Supplier {
		return false
	}
	if f.Availability != "" {
		if string(stock.Classify(p.StockQuantity, uc.threshold)) != f.Availability {
			return false
		}
	}
	return true
}

// GetByID returns one wood product, or (nil, nil) when it does not exist.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WoodProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return uc.toResponse(p), nil
}

// UpdateStock sets the absolute stock quantity (never below zero).
func (uc *WarehouseUseCase) UpdateStock(id string, quantity int) (*dto.WoodProductResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	p.StockQuantity = quantity
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// Summary values the whole warehouse at selling price and counts stock
// statuses against the warehouse threshold.
func (uc *WarehouseUseCase) Summary() (*dto.WarehouseSummaryResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]stock.Item, 0, len(products))
	suppliers := make(map[string]struct{})
	for _, p := range products {
		items = append(items, stock.Item{Price: p.SellingPrice, Quantity: p.StockQuantity})
		suppliers[p.Supplier] = struct{}{}
	}
	v := stock.Valuate(items, uc.threshold)
	names := make([]string, 0, len(suppliers))
	for name := range suppliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return &dto.WarehouseSummaryResponse{
		TotalValue: v.TotalValue,
		InStock:    v.InStock,
		LowStock:   v.LowStock,
		OutOfStock: v.OutOfStock,
		Suppliers:  names,
	}, nil
}

func (uc *WarehouseUseCase) toResponse(p *entity.WoodProduct) *dto.WoodProductResponse {
	return &dto.WoodProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		Supplier:      p.Supplier,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		StockQuantity: p.StockQuantity,
		StockStatus:   string(stock.Classify(p.StockQuantity, uc.threshold)),
		Unit:          p.Unit,
		DateReceived:  p.DateReceived.Format("2006-01-02"),
		Description:   p.Description,
	}
}
