package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

func TestBookingAndConflictResolution(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)
	p2 := registerPatient(t, env)

	resp, err := env.appointments.Create(&dto.CreateAppointmentRequest{
		PatientID:    p1,
		DepartmentID: "dep_cardio",
		DoctorID:     "doc_meena",
		Date:         "2030-01-10",
		Time:         "09:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(resp.ID, "a_") {
		t.Errorf("appointment id %q should carry the a prefix", resp.ID)
	}
	if resp.Doctor != "Dr. R. Meena" || resp.Department != "Cardiology" {
		t.Errorf("joined names wrong: %+v", resp)
	}
	if resp.Status != string(entity.StatusUpcoming) {
		t.Errorf("status = %q, want Upcoming", resp.Status)
	}

	// Same doctor, date and time for another patient must be rejected.
	_, err = env.appointments.Create(&dto.CreateAppointmentRequest{
		PatientID:    p2,
		DepartmentID: "dep_cardio",
		DoctorID:     "doc_meena",
		Date:         "2030-01-10",
		Time:         "09:00",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Moving the first booking frees 09:00 for a new one.
	if _, err := env.appointments.Reschedule(resp.ID, &dto.RescheduleAppointmentRequest{
		Date: "2030-01-10",
		Time: "09:30",
	}); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if _, err := env.appointments.Create(&dto.CreateAppointmentRequest{
		PatientID:    p2,
		DepartmentID: "dep_cardio",
		DoctorID:     "doc_meena",
		Date:         "2030-01-10",
		Time:         "09:00",
	}); err != nil {
		t.Errorf("freed slot should be bookable again, got %v", err)
	}
}

func TestSameSlotDifferentDoctorOrDate(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)

	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")
	// Same time with another doctor is fine.
	bookAppointment(t, env, p1, "dep_ortho", "doc_rahul", "2030-01-10", "09:00")
	// Same doctor and time on another date is fine.
	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-11", "09:00")
}

func TestRescheduleToOwnSlotIsNotAConflict(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)
	id := bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")

	if _, err := env.appointments.Reschedule(id, &dto.RescheduleAppointmentRequest{
		Date: "2030-01-10",
		Time: "09:00",
	}); err != nil {
		t.Errorf("no-op reschedule must not self-collide: %v", err)
	}
}

func TestRescheduleUnknownAppointment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.appointments.Reschedule("a_nope", &dto.RescheduleAppointmentRequest{
		Date: "2030-01-10",
		Time: "09:00",
	})
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestTemporalValidity(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)

	base := &dto.CreateAppointmentRequest{
		PatientID:    p1,
		DepartmentID: "dep_cardio",
		DoctorID:     "doc_meena",
		Time:         "09:00",
	}

	past := *base
	past.Date = "2000-01-01"
	if _, err := env.appointments.Create(&past); !errors.Is(err, ErrPastDate) {
		t.Errorf("past date: expected ErrPastDate, got %v", err)
	}

	malformed := *base
	malformed.Date = "10-01-2030"
	if _, err := env.appointments.Create(&malformed); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("malformed date: expected ErrInvalidDate, got %v", err)
	}

	today := *base
	today.Date = time.Now().Format(entity.DateLayout)
	resp, err := env.appointments.Create(&today)
	if err != nil {
		t.Fatalf("booking for today must be accepted: %v", err)
	}
	if resp.Status != string(entity.StatusToday) {
		t.Errorf("status = %q, want Today", resp.Status)
	}

	// The same rule applies to reschedules.
	if _, err := env.appointments.Reschedule(resp.ID, &dto.RescheduleAppointmentRequest{
		Date: "2000-01-01",
		Time: "09:30",
	}); !errors.Is(err, ErrPastDate) {
		t.Errorf("reschedule to the past: expected ErrPastDate, got %v", err)
	}
}

func TestReferentialIntegrityAtCreation(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)

	tests := []struct {
		name   string
		mutate func(*dto.CreateAppointmentRequest)
		want   error
	}{
		{"unknown patient", func(r *dto.CreateAppointmentRequest) { r.PatientID = "p_nope" }, ErrPatientNotFound},
		{"unknown department", func(r *dto.CreateAppointmentRequest) { r.DepartmentID = "dep_nope" }, ErrDepartmentNotFound},
		{"unknown doctor", func(r *dto.CreateAppointmentRequest) { r.DoctorID = "doc_nope" }, ErrDoctorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.CreateAppointmentRequest{
				PatientID:    p1,
				DepartmentID: "dep_cardio",
				DoctorID:     "doc_meena",
				Date:         "2030-01-10",
				Time:         "09:00",
			}
			tt.mutate(req)
			if _, err := env.appointments.Create(req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSlotMustBelongToDoctorInventory(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)

	// doc_meena offers 09:00-11:00; 08:00 is not in the inventory.
	_, err := env.appointments.Create(&dto.CreateAppointmentRequest{
		PatientID:    p1,
		DepartmentID: "dep_cardio",
		DoctorID:     "doc_meena",
		Date:         "2030-01-10",
		Time:         "08:00",
	})
	if !errors.Is(err, ErrSlotNotOffered) {
		t.Errorf("expected ErrSlotNotOffered, got %v", err)
	}

	id := bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")
	if _, err := env.appointments.Reschedule(id, &dto.RescheduleAppointmentRequest{
		Date: "2030-01-10",
		Time: "08:00",
	}); !errors.Is(err, ErrSlotNotOffered) {
		t.Errorf("reschedule outside the inventory: expected ErrSlotNotOffered, got %v", err)
	}
}

func TestMissingFieldsAreRejected(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.appointments.Create(&dto.CreateAppointmentRequest{}); err == nil {
		t.Error("empty request must be rejected")
	}
	if _, err := env.appointments.Create(&dto.CreateAppointmentRequest{
		PatientID:    "p_x",
		DepartmentID: "dep_cardio",
		DoctorID:     "doc_meena",
		Date:         "2030-01-10",
		// Time missing
	}); err == nil {
		t.Error("missing time must be rejected")
	}
}

func TestDeleteAppointment(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)
	id := bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")

	if err := env.appointments.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, err := env.appointments.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Total != 0 {
		t.Errorf("appointment still present after delete: %+v", list.Appointments)
	}

	// The slot is free again.
	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")
}

func TestListJoinsAndSearch(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)

	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")
	bookAppointment(t, env, p1, "dep_ent", "doc_arun", "2030-02-20", "10:00")

	all, err := env.appointments.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if all.Total != 2 {
		t.Fatalf("expected 2 rows, got %d", all.Total)
	}
	// Insertion order preserved.
	if all.Appointments[0].Doctor != "Dr. R. Meena" {
		t.Errorf("order not preserved: %+v", all.Appointments[0])
	}

	byDoctor, err := env.appointments.List("MEENA")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if byDoctor.Total != 1 || byDoctor.Appointments[0].Doctor != "Dr. R. Meena" {
		t.Errorf("doctor filter mismatch: %+v", byDoctor.Appointments)
	}

	byDate, err := env.appointments.List("2030-02")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if byDate.Total != 1 || byDate.Appointments[0].Date != "2030-02-20" {
		t.Errorf("date filter mismatch: %+v", byDate.Appointments)
	}

	none, err := env.appointments.List("no-such-thing")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if none.Total != 0 {
		t.Errorf("no-match query must return an empty set, got %d", none.Total)
	}
}

func TestDanglingReferencesRenderUnknown(t *testing.T) {
	env := newTestEnv(t)

	// Written through the repository to bypass the engine's integrity
	// checks, simulating a reference that stopped resolving.
	stale := &entity.Appointment{
		ID:           "a_stale",
		PatientID:    "p_gone",
		DepartmentID: "dep_cardio",
		DoctorID:     "doc_meena",
		Date:         "2030-01-10",
		Time:         "09:00",
		CreatedAt:    time.Now(),
	}
	if err := env.appointmentRepo.Create(env.store, stale); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := env.appointments.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Appointments[0].Patient != converter.Unknown {
		t.Errorf("dangling patient should render %q, got %q", converter.Unknown, list.Appointments[0].Patient)
	}

	rows, err := env.appointments.ExportRows()
	if err != nil {
		t.Fatalf("ExportRows: %v", err)
	}
	if rows[0].PatientName != "" || rows[0].Contact != "" {
		t.Errorf("export should degrade dangling references to empty strings: %+v", rows[0])
	}
}

func TestListForPatient(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)
	p2 := registerPatient(t, env)

	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")
	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-11", "09:00")
	bookAppointment(t, env, p2, "dep_ent", "doc_arun", "2030-01-10", "10:00")

	list, err := env.appointments.ListForPatient(p1)
	if err != nil {
		t.Fatalf("ListForPatient: %v", err)
	}
	if list.Total != 2 {
		t.Errorf("expected 2 bookings for %s, got %d", p1, list.Total)
	}
}

func TestExportRows(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)
	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:00")

	rows, err := env.appointments.ExportRows()
	if err != nil {
		t.Fatalf("ExportRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.PatientName != "Asha Rao" || row.Contact == "" {
		t.Errorf("patient fields missing: %+v", row)
	}
	if row.Department != "Cardiology" || row.Doctor != "Dr. R. Meena" {
		t.Errorf("joined names wrong: %+v", row)
	}
	if row.Status != string(entity.StatusUpcoming) {
		t.Errorf("status = %q", row.Status)
	}
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)
	p2 := registerPatient(t, env)

	today := time.Now().Format(entity.DateLayout)
	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", today, "09:00")
	bookAppointment(t, env, p1, "dep_cardio", "doc_meena", "2030-01-10", "09:30")
	bookAppointment(t, env, p2, "dep_ent", "doc_arun", "2030-01-10", "10:00")

	stats, err := env.appointments.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalAppointments != 3 {
		t.Errorf("total = %d, want 3", stats.TotalAppointments)
	}
	if stats.TodayAppointments != 1 {
		t.Errorf("today = %d, want 1", stats.TodayAppointments)
	}
	if stats.UpcomingAppointments != 2 {
		t.Errorf("upcoming = %d, want 2", stats.UpcomingAppointments)
	}
	if stats.TotalPatients != 2 {
		t.Errorf("patients = %d, want 2", stats.TotalPatients)
	}
}

// Two stores over the same directory model two sessions against the same
// persisted data. The last writer wins; there is no staleness detection.
// This is a documented limitation, not a supported mode.
func TestConcurrentSessionsLastWriterWins(t *testing.T) {
	env := newTestEnv(t)
	p1 := registerPatient(t, env)

	// A second full write of the patients collection replaces the first
	// session's view wholesale.
	if err := env.patientRepo.Delete(env.store, p1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := env.patients.Get(p1); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("second write should have replaced the collection, got %v", err)
	}
}
