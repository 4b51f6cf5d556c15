package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/repository"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/stock"
)

// ProductUseCase showroom furniture: listing with the floor's filters,
// creation, and stock updates.
type ProductUseCase struct {
	repo      repository.ProductRepository
	threshold int // showroom low-stock threshold
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, lowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{repo: repo, threshold: lowStockThreshold}
}

// List returns showroom products matching the filters: free-text search on
// name and description, exact type and quality, inclusive price range.
func (uc *ProductUseCase) List(f dto.ProductFilters) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if !matchesProduct(p, f) {
			continue
		}
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func matchesProduct(p *entity.Product, f dto.ProductFilters) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Quality != "" && p.Quality != f.Quality {
		return false
	}
	if f.MinPrice > 0 && p.Price.LessThan(decimal.NewFromInt(f.MinPrice)) {
		return false
	}
	if f.MaxPrice > 0 && p.Price.GreaterThan(decimal.NewFromInt(f.MaxPrice)) {
		return false
	}
	return true
}

// GetByID returns one product, or (nil, nil) when it does not exist.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return uc.toResponse(p), nil
}

// Create adds a furniture piece to the showroom.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Type == "" {
		return nil, domain.ErrMissingField
	}
	if !entity.ValidProductType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quality == "" {
		in.Quality = entity.QualityStandard
	}
	if !entity.ValidQuality(in.Quality) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		Price:     in.Price,
		CostPrice: in.CostPrice,
		Measurements: entity.Measurements{
			Width:  in.Measurements.Width,
			Height: in.Measurements.Height,
			Depth:  in.Measurements.Depth,
		},
		Color:         in.Color,
		Quality:       in.Quality,
		StockQuantity: in.StockQuantity,
		Supplier:      in.Supplier,
		Description:   in.Description,
		Featured:      in.Featured,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// UpdateStock sets the absolute stock quantity (never below zero).
func (uc *ProductUseCase) UpdateStock(id string, quantity int) (*dto.ProductResponse, error) {
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

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Price:     p.Price,
		CostPrice: p.CostPrice,
		Measurements: dto.MeasurementsDTO{
			Width:  p.Measurements.Width,
			Height: p.Measurements.Height,
			Depth:  p.Measurements.Depth,
		},
		Color:         p.Color,
		Quality:       p.Quality,
		StockQuantity: p.StockQuantity,
		StockStatus:   string(stock.Classify(p.StockQuantity, uc.threshold)),
		Supplier:      p.Supplier,
		Description:   p.Description,
		Featured:      p.Featured,
	}
}
