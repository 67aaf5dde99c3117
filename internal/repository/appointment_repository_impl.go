package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) FindAll(store *storage.Store) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := store.Load(storage.CollectionAppointments, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(store *storage.Store, id string) (*entity.Appointment, error) {
	appointments, err := r.FindAll(store)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) FindByPatientID(store *storage.Store, patientID string) ([]entity.Appointment, error) {
	appointments, err := r.FindAll(store)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.PatientID == patientID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// FindConflict scans the whole collection for a booking of the doctor's slot
// on the given date. Linear scan is fine at single-clinic cardinality.
func (r *appointmentRepository) FindConflict(store *storage.Store, doctorID, date, timeSlot, excludeID string) (*entity.Appointment, error) {
	appointments, err := r.FindAll(store)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		a := &appointments[i]
		if a.ID == excludeID {
			continue
		}
		if a.DoctorID == doctorID && a.Date == date && a.Time == timeSlot {
			return a, nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) Create(store *storage.Store, appointment *entity.Appointment) error {
	appointments, err := r.FindAll(store)
	if err != nil {
		return err
	}
	appointments = append(appointments, *appointment)
	return store.Save(storage.CollectionAppointments, appointments)
}

// Update replaces the stored record matching appointment.ID. Callers are
// expected to have checked existence; an unmatched id is a no-op.
func (r *appointmentRepository) Update(store *storage.Store, appointment *entity.Appointment) error {
	appointments, err := r.FindAll(store)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == appointment.ID {
			appointments[i] = *appointment
			break
		}
	}
	return store.Save(storage.CollectionAppointments, appointments)
}

func (r *appointmentRepository) Delete(store *storage.Store, id string) error {
	appointments, err := r.FindAll(store)
	if err != nil {
		return err
	}
	kept := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return store.Save(storage.CollectionAppointments, kept)
}

func (r *appointmentRepository) DeleteByPatientID(store *storage.Store, patientID string) error {
	appointments, err := r.FindAll(store)
	if err != nil {
		return err
	}
	kept := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.PatientID != patientID {
			kept = append(kept, a)
		}
	}
	return store.Save(storage.CollectionAppointments, kept)
}
