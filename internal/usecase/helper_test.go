package usecase

import (
	"io"
	"testing"

	"clinic-scheduler/internal/delivery/dto"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/pkg/validator"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type testEnv struct {
	store           *storage.Store
	registry        RegistryUsecase
	patients        PatientUsecase
	appointments    AppointmentUsecase
	appointmentRepo domainRepo.AppointmentRepository
	patientRepo     domainRepo.PatientRepository
}

// newTestEnv builds the full dependency graph over an in-memory filesystem
// and runs first-run seeding.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := storage.NewStore(afero.NewMemMapFs(), "data", log)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	customValidator := validator.NewValidator()
	departmentRepo := repository.NewDepartmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	env := &testEnv{
		store:           store,
		registry:        NewRegistryUsecase(store, log, departmentRepo, doctorRepo),
		patients:        NewPatientUsecase(store, log, customValidator, patientRepo, appointmentRepo),
		appointments:    NewAppointmentUsecase(store, log, customValidator, appointmentRepo, patientRepo, doctorRepo, departmentRepo),
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}

	if err := env.registry.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return env
}

func validRegisterRequest() *dto.RegisterPatientRequest {
	return &dto.RegisterPatientRequest{
		FirstName:  "Asha",
		LastName:   "Rao",
		Age:        30,
		Gender:     "Female",
		Contact:    gofakeit.Numerify("##########"),
		Email:      gofakeit.Email(),
		Address:    "12 MG Road",
		City:       gofakeit.City(),
		State:      gofakeit.State(),
		Pincode:    gofakeit.Numerify("######"),
		BloodGroup: "O+",
	}
}

func registerPatient(t *testing.T, env *testEnv) string {
	t.Helper()
	resp, err := env.patients.Register(validRegisterRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return resp.ID
}

func bookAppointment(t *testing.T, env *testEnv, patientID, departmentID, doctorID, date, timeSlot string) string {
	t.Helper()
	resp, err := env.appointments.Create(&dto.CreateAppointmentRequest{
		PatientID:    patientID,
		DepartmentID: departmentID,
		DoctorID:     doctorID,
		Date:         date,
		Time:         timeSlot,
	})
	if err != nil {
		t.Fatalf("Create appointment: %v", err)
	}
	return resp.ID
}
