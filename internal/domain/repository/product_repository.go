package repository

import "github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"

// ProductRepository is the storage port for showroom furniture.
// Lookups return (nil, nil) when the id does not exist.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
