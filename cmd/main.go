package main

import (
	"clinic-scheduler/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies and seed data
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	stats, err := app.Appointments.Stats()
	if err != nil {
		logrus.Fatalf("Failed to read store: %v", err)
	}

	logrus.Infof("Clinic scheduler ready: %d patients, %d appointments (%d today, %d upcoming)",
		stats.TotalPatients, stats.TotalAppointments, stats.TodayAppointments, stats.UpcomingAppointments)
}
