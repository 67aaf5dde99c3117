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

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	Register(req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	Get(id string) (*dto.PatientResponse, error)
	Update(id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	// Delete removes the patient and every appointment referencing it.
	Delete(id string) error
	// List filters patients by a case-insensitive substring over name,
	// contact, email and address. An empty query returns all patients in
	// insertion order.
	List(query string) (*dto.PatientListResponse, error)
	LastRegisteredID() (string, error)
}

type patientUsecase struct {
	store           *storage.Store
	log             *logrus.Logger
	validator       *validator.CustomValidator
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewPatientUsecase(
	store *storage.Store,
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) PatientUsecase {
	return &patientUsecase{
		store:           store,
		log:             log,
		validator:       customValidator,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *patientUsecase) Register(req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		ID:         identifier.New("p"),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Name:       entity.FullName(req.FirstName, req.LastName),
		Age:        req.Age,
		Gender:     req.Gender,
		Contact:    req.Contact,
		Email:      req.Email,
		Address:    entity.ComposeAddress(req.Address, req.City, req.State, req.Pincode),
		City:       req.City,
		State:      req.State,
		Pincode:    req.Pincode,
		BloodGroup: req.BloodGroup,
		CreatedAt:  time.Now(),
	}

	if err := u.patientRepo.Create(u.store, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	// Remembered so the booking form can preselect the newest patient.
	if err := u.patientRepo.SetLastRegisteredID(u.store, patient.ID); err != nil {
		u.log.Warnf("Failed to record last registered patient (non-fatal): %+v", err)
	}

	u.log.Infof("Patient registered: id=%s", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.store, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.store, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.Name = entity.FullName(req.FirstName, req.LastName)
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Contact = req.Contact
	patient.Email = req.Email
	patient.Address = entity.ComposeAddress(req.Address, req.City, req.State, req.Pincode)
	patient.City = req.City
	patient.State = req.State
	patient.Pincode = req.Pincode
	patient.BloodGroup = req.BloodGroup

	if err := u.patientRepo.Update(u.store, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Delete cascades: the patient's appointments are removed first, then the
// patient. The two writes are not atomic; this ordering means a failure in
// between can never leave appointments referencing a deleted patient.
func (u *patientUsecase) Delete(id string) error {
	patient, err := u.patientRepo.FindByID(u.store, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.appointmentRepo.DeleteByPatientID(u.store, id); err != nil {
		u.log.Warnf("Failed to delete appointments for patient %s: %+v", id, err)
		return err
	}
	if err := u.patientRepo.Delete(u.store, id); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}

	u.log.Infof("Patient deleted with appointments: id=%s", id)
	return nil
}

func (u *patientUsecase) List(query string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if q == "" {
			filtered = append(filtered, p)
			continue
		}
		blob := strings.ToLower(p.Name + " " + p.Contact + " " + p.Email + " " + p.Address)
		if strings.Contains(blob, q) {
			filtered = append(filtered, p)
		}
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(filtered),
		Total:    len(filtered),
	}, nil
}

func (u *patientUsecase) LastRegisteredID() (string, error) {
	return u.patientRepo.LastRegisteredID(u.store)
}
