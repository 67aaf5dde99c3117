package dto

import "time"

// RegisterPatientRequest carries the registration form fields. The tags
// encode the form's format rules: names are letters/spaces, contact is a
// 10-digit number, pincode is 6 digits, email is optional.
type RegisterPatientRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=2,namechars"`
	LastName   string `json:"last_name"`
	Age        int    `json:"age" validate:"required,gt=0"`
	Gender     string `json:"gender" validate:"required"`
	Contact    string `json:"contact" validate:"required,len=10,numeric"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Pincode    string `json:"pincode" validate:"required,len=6,numeric"`
	BloodGroup string `json:"blood_group" validate:"required"`
}

// UpdatePatientRequest mirrors registration: an edit re-validates every
// field and re-derives the composite name and address.
type UpdatePatientRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=2,namechars"`
	LastName   string `json:"last_name"`
	Age        int    `json:"age" validate:"required,gt=0"`
	Gender     string `json:"gender" validate:"required"`
	Contact    string `json:"contact" validate:"required,len=10,numeric"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Pincode    string `json:"pincode" validate:"required,len=6,numeric"`
	BloodGroup string `json:"blood_group" validate:"required"`
}

type PatientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address"`
	BloodGroup string    `json:"blood_group"`
	CreatedAt  time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
