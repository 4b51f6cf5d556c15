package repository

import "github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"

// SupplierRepository is the storage port for suppliers.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Delete(id string) error
}
