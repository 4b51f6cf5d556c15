package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/report"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/repository"
)

// SupplierUseCase supplier listing, creation, deletion and the aggregate
// metrics card.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List returns suppliers, optionally filtered by a free-text search on
// name and the supplied category names.
func (uc *SupplierUseCase) List(search string) (*dto.SupplierListResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	q := strings.ToLower(search)
	for _, s := range suppliers {
		if q != "" && !supplierMatches(s, q) {
			continue
		}
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

func supplierMatches(s *entity.Supplier, q string) bool {
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	for _, p := range s.Products {
		if strings.Contains(strings.ToLower(p), q) {
			return true
		}
	}
	return false
}

// Create adds a supplier. Name and contact are required; rating must stay
// on the 0-5 scale.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Contact == "" {
		return nil, domain.ErrMissingField
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Supplier{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Contact:  in.Contact,
		Email:    in.Email,
		Address:  in.Address,
		Products: in.Products,
		Rating:   in.Rating,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete removes a supplier by id.
func (uc *SupplierUseCase) Delete(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Metrics computes count, average rating and distinct supplied categories.
func (uc *SupplierUseCase) Metrics() (*dto.SupplierMetricsResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	all := make([]entity.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		all = append(all, *s)
	}
	m := report.Suppliers(all)
	return &dto.SupplierMetricsResponse{
		Count:         m.Count,
		AverageRating: m.AverageRating,
		Categories:    m.Categories,
		HasData:       m.HasData,
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		Contact:  s.Contact,
		Email:    s.Email,
		Address:  s.Address,
		Products: s.Products,
		Rating:   s.Rating,
	}
}
