package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindAll(store *storage.Store) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := store.Load(storage.CollectionPatients, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(store *storage.Store, id string) (*entity.Patient, error) {
	patients, err := r.FindAll(store)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, nil
}

func (r *patientRepository) Create(store *storage.Store, patient *entity.Patient) error {
	patients, err := r.FindAll(store)
	if err != nil {
		return err
	}
	patients = append(patients, *patient)
	return store.Save(storage.CollectionPatients, patients)
}

// Update replaces the stored record matching patient.ID. Callers are
// expected to have checked existence; an unmatched id is a no-op.
func (r *patientRepository) Update(store *storage.Store, patient *entity.Patient) error {
	patients, err := r.FindAll(store)
	if err != nil {
		return err
	}
	for i := range patients {
		if patients[i].ID == patient.ID {
			patients[i] = *patient
			break
		}
	}
	return store.Save(storage.CollectionPatients, patients)
}

func (r *patientRepository) Delete(store *storage.Store, id string) error {
	patients, err := r.FindAll(store)
	if err != nil {
		return err
	}
	kept := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return store.Save(storage.CollectionPatients, kept)
}

func (r *patientRepository) SetLastRegisteredID(store *storage.Store, id string) error {
	return store.Save(storage.KeyLastRegisteredPatient, id)
}

func (r *patientRepository) LastRegisteredID(store *storage.Store) (string, error) {
	var id string
	if err := store.Load(storage.KeyLastRegisteredPatient, &id); err != nil {
		return "", err
	}
	return id, nil
}
