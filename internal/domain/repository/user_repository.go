package repository

import "github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"

// UserRepository is the storage port for staff accounts.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}
