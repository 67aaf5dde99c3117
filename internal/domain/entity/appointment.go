package entity

import "time"

// DateLayout is the calendar-date format used for appointment dates.
// ISO dates compare lexicographically in chronological order.
const DateLayout = "2006-01-02"

// AppointmentStatus classifies an appointment against the current calendar
// date. Derived on every read, never persisted.
type AppointmentStatus string

const (
	StatusToday     AppointmentStatus = "Today"
	StatusUpcoming  AppointmentStatus = "Upcoming"
	StatusCompleted AppointmentStatus = "Completed"
)

// Appointment books one of a doctor's slots on a calendar date. An edit may
// change Date and Time only; patient and doctor are fixed at creation.
type Appointment struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	DepartmentID string    `json:"department_id"`
	DoctorID     string    `json:"doctor_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeriveStatus classifies date against now's calendar date, ignoring the
// time of day.
func DeriveStatus(date string, now time.Time) AppointmentStatus {
	today := now.Format(DateLayout)
	switch {
	case date == today:
		return StatusToday
	case date > today:
		return StatusUpcoming
	default:
		return StatusCompleted
	}
}
