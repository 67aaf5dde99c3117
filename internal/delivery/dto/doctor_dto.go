package dto

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DoctorResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DepartmentID string   `json:"department_id"`
	Slots        []string `json:"slots"`
}
