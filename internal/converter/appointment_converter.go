package converter

import (
	"time"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

// Unknown is rendered in joined views for references that no longer resolve.
const Unknown = "Unknown"

// nameIndex maps record ids to display names for the join helpers.
type nameIndex struct {
	patients    map[string]*entity.Patient
	doctors     map[string]string
	departments map[string]string
}

func buildIndex(patients []entity.Patient, doctors []entity.Doctor, departments []entity.Department) nameIndex {
	idx := nameIndex{
		patients:    make(map[string]*entity.Patient, len(patients)),
		doctors:     make(map[string]string, len(doctors)),
		departments: make(map[string]string, len(departments)),
	}
	for i := range patients {
		idx.patients[patients[i].ID] = &patients[i]
	}
	for _, d := range doctors {
		idx.doctors[d.ID] = d.Name
	}
	for _, d := range departments {
		idx.departments[d.ID] = d.Name
	}
	return idx
}

// AppointmentsToResponses joins each appointment against the patient, doctor
// and department collections and derives the read-time status.
func AppointmentsToResponses(
	appointments []entity.Appointment,
	patients []entity.Patient,
	doctors []entity.Doctor,
	departments []entity.Department,
	now time.Time,
) []dto.AppointmentResponse {
	idx := buildIndex(patients, doctors, departments)

	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		patient := Unknown
		if p, ok := idx.patients[a.PatientID]; ok {
			patient = p.Name
		}
		doctor, ok := idx.doctors[a.DoctorID]
		if !ok {
			doctor = Unknown
		}
		department, ok := idx.departments[a.DepartmentID]
		if !ok {
			department = Unknown
		}

		responses[i] = dto.AppointmentResponse{
			ID:         a.ID,
			Patient:    patient,
			Department: department,
			Doctor:     doctor,
			Date:       a.Date,
			Time:       a.Time,
			Status:     string(entity.DeriveStatus(a.Date, now)),
		}
	}
	return responses
}

// AppointmentsToExportRows builds the flat export projection. Unresolved
// references become empty strings so the exported table never carries
// placeholder text.
func AppointmentsToExportRows(
	appointments []entity.Appointment,
	patients []entity.Patient,
	doctors []entity.Doctor,
	departments []entity.Department,
	now time.Time,
) []dto.AppointmentExportRow {
	idx := buildIndex(patients, doctors, departments)

	rows := make([]dto.AppointmentExportRow, len(appointments))
	for i, a := range appointments {
		var patientName, contact string
		if p, ok := idx.patients[a.PatientID]; ok {
			patientName = p.Name
			contact = p.Contact
		}

		rows[i] = dto.AppointmentExportRow{
			ID:          a.ID,
			PatientName: patientName,
			Contact:     contact,
			Department:  idx.departments[a.DepartmentID],
			Doctor:      idx.doctors[a.DoctorID],
			Date:        a.Date,
			Time:        a.Time,
			Status:      string(entity.DeriveStatus(a.Date, now)),
		}
	}
	return rows
}
