package bootstrap

import (
	"fmt"
	"os"

	"clinic-scheduler/config"
	"clinic-scheduler/internal/infrastructure/storage"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// App holds all dependencies for the application. Presentation collaborators
// drive the usecases directly; there is no network surface.
type App struct {
	Config *config.Config
	Store  *storage.Store

	Registry     usecase.RegistryUsecase
	Patients     usecase.PatientUsecase
	Appointments usecase.AppointmentUsecase
}

// New creates an App with all dependencies initialized and the record store
// seeded.
func New() (*App, error) {
	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()

	store, err := storage.NewStore(afero.NewOsFs(), cfg.Store.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	logrus.Infof("Record store opened at %s", cfg.Store.DataDir)

	customValidator := validator.NewValidator()

	departmentRepo := repository.NewDepartmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	app := &App{
		Config:       cfg,
		Store:        store,
		Registry:     usecase.NewRegistryUsecase(store, log, departmentRepo, doctorRepo),
		Patients:     usecase.NewPatientUsecase(store, log, customValidator, patientRepo, appointmentRepo),
		Appointments: usecase.NewAppointmentUsecase(store, log, customValidator, appointmentRepo, patientRepo, doctorRepo, departmentRepo),
	}

	if err := app.Registry.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize record store: %w", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}
