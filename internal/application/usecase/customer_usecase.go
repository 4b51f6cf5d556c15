package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/woodcraft-ug/woodcraft-api/internal/application/dto"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/report"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/repository"
)

// CustomerUseCase customer listing, creation, deletion and the aggregate
// metrics card.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List returns customers, optionally filtered by a free-text search on
// name, phone and address.
func (uc *CustomerUseCase) List(search string) (*dto.CustomerListResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	q := strings.ToLower(search)
	for _, c := range customers {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(c.Phone, search) &&
			!strings.Contains(strings.ToLower(c.Address), q) {
			continue
		}
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}, nil
}

// Create adds a customer. Name and phone are required; everything else is
// a presence-unchecked optional.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrMissingField
	}
	c := &entity.Customer{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		TotalPurchases: decimal.Zero,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete removes a customer by id.
func (uc *CustomerUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Metrics computes count, revenue sum and average purchase over all
// customers. An empty collection yields the no-data result.
func (uc *CustomerUseCase) Metrics() (*dto.CustomerMetricsResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	all := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		all = append(all, *c)
	}
	m := report.Customers(all)
	return &dto.CustomerMetricsResponse{
		Count:           m.Count,
		TotalRevenue:    m.TotalRevenue,
		AveragePurchase: m.AveragePurchase,
		HasData:         m.HasData,
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	out := &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		TotalPurchases: c.TotalPurchases,
	}
	if c.LastPurchase != nil {
		out.LastPurchase = c.LastPurchase.Format("2006-01-02")
	}
	return out
}
