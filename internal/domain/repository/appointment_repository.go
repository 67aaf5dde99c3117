package repository

import (
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/infrastructure/storage"
)

type AppointmentRepository interface {
	FindAll(store *storage.Store) ([]entity.Appointment, error)
	FindByID(store *storage.Store, id string) (*entity.Appointment, error)
	FindByPatientID(store *storage.Store, patientID string) ([]entity.Appointment, error)
	// FindConflict returns the appointment occupying the doctor's slot on the
	// given date, ignoring excludeID so an edit never collides with itself.
	FindConflict(store *storage.Store, doctorID, date, timeSlot, excludeID string) (*entity.Appointment, error)
	Create(store *storage.Store, appointment *entity.Appointment) error
	Update(store *storage.Store, appointment *entity.Appointment) error
	Delete(store *storage.Store, id string) error
	DeleteByPatientID(store *storage.Store, patientID string) error
}
