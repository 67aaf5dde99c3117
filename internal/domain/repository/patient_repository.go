package repository

import (
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/infrastructure/storage"
)

type PatientRepository interface {
	FindAll(store *storage.Store) ([]entity.Patient, error)
	FindByID(store *storage.Store, id string) (*entity.Patient, error)
	Create(store *storage.Store, patient *entity.Patient) error
	Update(store *storage.Store, patient *entity.Patient) error
	Delete(store *storage.Store, id string) error
	SetLastRegisteredID(store *storage.Store, id string) error
	LastRegisteredID(store *storage.Store) (string, error)
}
