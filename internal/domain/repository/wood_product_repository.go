package repository

import "github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"

// WoodProductRepository is the storage port for warehouse wood stock.
type WoodProductRepository interface {
	Create(product *entity.WoodProduct) error
	GetByID(id string) (*entity.WoodProduct, error)
	List() ([]*entity.WoodProduct, error)
	Update(product *entity.WoodProduct) error
	Delete(id string) error
}
