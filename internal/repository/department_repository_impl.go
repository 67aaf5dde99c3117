package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) FindAll(store *storage.Store) ([]entity.Department, error) {
	var departments []entity.Department
	if err := store.Load(storage.CollectionDepartments, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) FindByID(store *storage.Store, id string) (*entity.Department, error) {
	departments, err := r.FindAll(store)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if departments[i].ID == id {
			return &departments[i], nil
		}
	}
	return nil, nil
}

func (r *departmentRepository) SaveAll(store *storage.Store, departments []entity.Department) error {
	return store.Save(storage.CollectionDepartments, departments)
}
