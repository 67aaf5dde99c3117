package repository

import (
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/infrastructure/storage"
)

type DepartmentRepository interface {
	FindAll(store *storage.Store) ([]entity.Department, error)
	FindByID(store *storage.Store, id string) (*entity.Department, error)
	SaveAll(store *storage.Store, departments []entity.Department) error
}
