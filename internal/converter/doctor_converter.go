package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = dto.DepartmentResponse{
			ID:   d.ID,
			Name: d.Name,
		}
	}
	return responses
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = dto.DoctorResponse{
			ID:           d.ID,
			Name:         d.Name,
			DepartmentID: d.DepartmentID,
			Slots:        d.Slots,
		}
	}
	return responses
}
