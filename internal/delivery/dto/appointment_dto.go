package dto

type CreateAppointmentRequest struct {
	PatientID    string `json:"patient_id" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
	DoctorID     string `json:"doctor_id" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// AppointmentResponse is the joined, display-ready projection of an
// appointment. Dangling references render as "Unknown" rather than failing
// the whole view.
type AppointmentResponse struct {
	ID         string `json:"id"`
	Patient    string `json:"patient"`
	Department string `json:"department"`
	Doctor     string `json:"doctor"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AppointmentExportRow is the flat projection handed to tabular/CSV
// renderers. Dangling references degrade to empty strings here.
type AppointmentExportRow struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Contact     string `json:"contact"`
	Department  string `json:"department"`
	Doctor      string `json:"doctor"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

// DashboardStats backs the home view's counters.
type DashboardStats struct {
	TotalAppointments    int `json:"total_appointments"`
	TodayAppointments    int `json:"today_appointments"`
	UpcomingAppointments int `json:"upcoming_appointments"`
	TotalPatients        int `json:"total_patients"`
}
