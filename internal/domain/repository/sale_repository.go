package repository

import "github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"

// SaleRepository is the storage port for sales. List returns sales in
// insertion order (most recent last).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
