package repository

import (
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/infrastructure/storage"
)

type DoctorRepository interface {
	FindAll(store *storage.Store) ([]entity.Doctor, error)
	FindByID(store *storage.Store, id string) (*entity.Doctor, error)
	FindByDepartmentID(store *storage.Store, departmentID string) ([]entity.Doctor, error)
	SaveAll(store *storage.Store, doctors []entity.Doctor) error
}
