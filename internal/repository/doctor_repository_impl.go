package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindAll(store *storage.Store) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := store.Load(storage.CollectionDoctors, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(store *storage.Store, id string) (*entity.Doctor, error) {
	doctors, err := r.FindAll(store)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}
	return nil, nil
}

func (r *doctorRepository) FindByDepartmentID(store *storage.Store, departmentID string) ([]entity.Doctor, error) {
	doctors, err := r.FindAll(store)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if d.DepartmentID == departmentID {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (r *doctorRepository) SaveAll(store *storage.Store, doctors []entity.Doctor) error {
	return store.Save(storage.CollectionDoctors, doctors)
}
