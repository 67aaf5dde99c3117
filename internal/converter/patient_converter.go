package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		Name:       patient.Name,
		Age:        patient.Age,
		Gender:     patient.Gender,
		Contact:    patient.Contact,
		Email:      patient.Email,
		Address:    patient.Address,
		BloodGroup: patient.BloodGroup,
		CreatedAt:  patient.CreatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
