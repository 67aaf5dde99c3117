package usecase

import (
	"errors"
	"strings"
	"time"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
	"clinic-scheduler/pkg/identifier"
	"clinic-scheduler/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("slot already booked for this doctor")
	ErrPastDate            = errors.New("date must be today or later")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrSlotNotOffered      = errors.New("time is not one of the doctor's slots")
)

type AppointmentUsecase interface {
	// Create books a doctor's slot. Rejections, in order: missing field,
	// malformed or past date, unknown patient/department/doctor, time not in
	// the doctor's inventory, slot already taken.
	Create(req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	// Reschedule moves an existing appointment to a new date and time. The
	// conflict scan excludes the appointment itself, so rescheduling to the
	// current slot is always accepted.
	Reschedule(id string, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(id string) error
	// List joins appointments with patient/doctor/department names and
	// filters by a case-insensitive substring over those names and the date.
	List(query string) (*dto.AppointmentListResponse, error)
	ListForPatient(patientID string) (*dto.AppointmentListResponse, error)
	ExportRows() ([]dto.AppointmentExportRow, error)
	Stats() (*dto.DashboardStats, error)
}

type appointmentUsecase struct {
	store           *storage.Store
	log             *logrus.Logger
	validator       *validator.CustomValidator
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	departmentRepo  repository.DepartmentRepository
}

func NewAppointmentUsecase(
	store *storage.Store,
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		store:           store,
		log:             log,
		validator:       customValidator,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		departmentRepo:  departmentRepo,
	}
}

// checkDate rejects malformed dates and dates before today. Validity is
// checked at write time only; committed appointments age into the past
// naturally.
func checkDate(date string, now time.Time) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	if date < now.Format(entity.DateLayout) {
		return ErrPastDate
	}
	return nil
}

func (u *appointmentUsecase) Create(req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := checkDate(req.Date, time.Now()); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.store, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	department, err := u.departmentRepo.FindByID(u.store, req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %s: %+v", req.DepartmentID, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.store, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Upstream selection controls only offer the doctor's own slots, but a
	// direct call must not be able to sidestep the inventory.
	if !doctor.HasSlot(req.Time) {
		return nil, ErrSlotNotOffered
	}

	conflict, err := u.appointmentRepo.FindConflict(u.store, req.DoctorID, req.Date, req.Time, "")
	if err != nil {
		u.log.Warnf("Failed conflict scan for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		ID:           identifier.New("a"),
		PatientID:    req.PatientID,
		DepartmentID: req.DepartmentID,
		DoctorID:     req.DoctorID,
		Date:         req.Date,
		Time:         req.Time,
		CreatedAt:    time.Now(),
	}

	if err := u.appointmentRepo.Create(u.store, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, time=%s",
		appointment.ID, appointment.DoctorID, appointment.Date, appointment.Time)

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		Patient:    patient.Name,
		Department: department.Name,
		Doctor:     doctor.Name,
		Date:       appointment.Date,
		Time:       appointment.Time,
		Status:     string(entity.DeriveStatus(appointment.Date, time.Now())),
	}, nil
}

func (u *appointmentUsecase) Reschedule(id string, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.store, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := checkDate(req.Date, time.Now()); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(u.store, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.HasSlot(req.Time) {
		return nil, ErrSlotNotOffered
	}

	conflict, err := u.appointmentRepo.FindConflict(u.store, appointment.DoctorID, req.Date, req.Time, id)
	if err != nil {
		u.log.Warnf("Failed conflict scan for doctor %s: %+v", appointment.DoctorID, err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrSlotTaken
	}

	appointment.Date = req.Date
	appointment.Time = req.Time

	if err := u.appointmentRepo.Update(u.store, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment rescheduled: id=%s, date=%s, time=%s", id, req.Date, req.Time)
	return u.joinOne(appointment)
}

func (u *appointmentUsecase) Delete(id string) error {
	if err := u.appointmentRepo.Delete(u.store, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

func (u *appointmentUsecase) List(query string) (*dto.AppointmentListResponse, error) {
	rows, err := u.joinAll()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]dto.AppointmentResponse, 0, len(rows))
	for _, r := range rows {
		if q == "" ||
			strings.Contains(strings.ToLower(r.Patient), q) ||
			strings.Contains(strings.ToLower(r.Department), q) ||
			strings.Contains(strings.ToLower(r.Doctor), q) ||
			strings.Contains(r.Date, q) {
			filtered = append(filtered, r)
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: filtered,
		Total:        len(filtered),
	}, nil
}

func (u *appointmentUsecase) ListForPatient(patientID string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.store, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	rows, err := u.join(appointments)
	if err != nil {
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: rows,
		Total:        len(rows),
	}, nil
}

func (u *appointmentUsecase) ExportRows() ([]dto.AppointmentExportRow, error) {
	appointments, err := u.appointmentRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	patients, doctors, departments, err := u.loadJoinCollections()
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToExportRows(appointments, patients, doctors, departments, time.Now()), nil
}

func (u *appointmentUsecase) Stats() (*dto.DashboardStats, error) {
	appointments, err := u.appointmentRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	patients, err := u.patientRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	today := time.Now().Format(entity.DateLayout)
	stats := &dto.DashboardStats{
		TotalAppointments: len(appointments),
		TotalPatients:     len(patients),
	}
	for _, a := range appointments {
		switch {
		case a.Date == today:
			stats.TodayAppointments++
		case a.Date > today:
			stats.UpcomingAppointments++
		}
	}
	return stats, nil
}

func (u *appointmentUsecase) loadJoinCollections() ([]entity.Patient, []entity.Doctor, []entity.Department, error) {
	patients, err := u.patientRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, nil, nil, err
	}
	doctors, err := u.doctorRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, nil, nil, err
	}
	departments, err := u.departmentRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, nil, nil, err
	}
	return patients, doctors, departments, nil
}

func (u *appointmentUsecase) join(appointments []entity.Appointment) ([]dto.AppointmentResponse, error) {
	patients, doctors, departments, err := u.loadJoinCollections()
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments, patients, doctors, departments, time.Now()), nil
}

func (u *appointmentUsecase) joinAll() ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return u.join(appointments)
}

func (u *appointmentUsecase) joinOne(appointment *entity.Appointment) (*dto.AppointmentResponse, error) {
	rows, err := u.join([]entity.Appointment{*appointment})
	if err != nil {
		return nil, err
	}
	return &rows[0], nil
}
