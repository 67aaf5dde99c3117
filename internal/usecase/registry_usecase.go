package usecase

import (
	"errors"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrDepartmentNotFound = errors.New("department not found")
)

// Baseline reference data written on first run. Departments and doctors are
// immutable afterwards.
var (
	seedDepartments = []entity.Department{
		{ID: "dep_cardio", Name: "Cardiology"},
		{ID: "dep_ent", Name: "ENT"},
		{ID: "dep_ortho", Name: "Orthopedics"},
		{ID: "dep_neuro", Name: "Neurology"},
	}

	seedDoctors = []entity.Doctor{
		{ID: "doc_meena", Name: "Dr. R. Meena", DepartmentID: "dep_cardio", Slots: []string{"09:00", "09:30", "10:00", "10:30", "11:00"}},
		{ID: "doc_arun", Name: "Dr. Arun V", DepartmentID: "dep_ent", Slots: []string{"10:00", "10:30", "11:00", "11:30", "12:00"}},
		{ID: "doc_rahul", Name: "Dr. Rahul S", DepartmentID: "dep_ortho", Slots: []string{"09:00", "09:30", "10:00", "10:30", "11:00"}},
		{ID: "doc_nisha", Name: "Dr. Nisha K", DepartmentID: "dep_neuro", Slots: []string{"13:00", "13:30", "14:00", "14:30", "15:00"}},
	}
)

type RegistryUsecase interface {
	Initialize() error
	ListDepartments() ([]dto.DepartmentResponse, error)
	ListDoctors() ([]dto.DoctorResponse, error)
	DoctorsByDepartment(departmentID string) ([]dto.DoctorResponse, error)
	SlotsForDoctor(doctorID string) ([]string, error)
}

type registryUsecase struct {
	store          *storage.Store
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	doctorRepo     repository.DoctorRepository
}

func NewRegistryUsecase(
	store *storage.Store,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	doctorRepo repository.DoctorRepository,
) RegistryUsecase {
	return &registryUsecase{
		store:          store,
		log:            log,
		departmentRepo: departmentRepo,
		doctorRepo:     doctorRepo,
	}
}

// Initialize seeds the reference collections on first run (detected by the
// departments collection being absent) and guarantees the mutable
// collections exist. Existing data is never overwritten.
func (u *registryUsecase) Initialize() error {
	seeded, err := u.store.Exists(storage.CollectionDepartments)
	if err != nil {
		return err
	}
	if !seeded {
		if err := u.departmentRepo.SaveAll(u.store, seedDepartments); err != nil {
			return err
		}
		u.log.Infof("seeded %d departments", len(seedDepartments))
	}

	haveDoctors, err := u.store.Exists(storage.CollectionDoctors)
	if err != nil {
		return err
	}
	if !haveDoctors {
		if err := u.doctorRepo.SaveAll(u.store, seedDoctors); err != nil {
			return err
		}
		u.log.Infof("seeded %d doctors", len(seedDoctors))
	}

	if err := u.store.Ensure(storage.CollectionPatients); err != nil {
		return err
	}
	return u.store.Ensure(storage.CollectionAppointments)
}

func (u *registryUsecase) ListDepartments() ([]dto.DepartmentResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}
	return converter.DepartmentsToResponses(departments), nil
}

func (u *registryUsecase) ListDoctors() ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.store)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *registryUsecase) DoctorsByDepartment(departmentID string) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindByDepartmentID(u.store, departmentID)
	if err != nil {
		u.log.Warnf("Failed to list doctors for department %s: %+v", departmentID, err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *registryUsecase) SlotsForDoctor(doctorID string) ([]string, error) {
	doctor, err := u.doctorRepo.FindByID(u.store, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor.Slots, nil
}
