package service

import (
	"context"
	"patientsapi/cmd/internal/domain/entity"
	"patientsapi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PatientRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]*entity.Patient, error)
	Save(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, patient *entity.Patient) error
}

// PatientRequest is the body of both create and update requests. Fields are
// pointers so that a missing field can be told apart from a zero value.
type PatientRequest struct {
	Name   *string `json:"name" validate:"required"`
	Age    *int    `json:"age" validate:"required"`
	Gender *string `json:"gender" validate:"required"`
}

type PatientResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type DefaultPatientService struct {
	PatientRepo PatientRepository
	Validate    *validator.Validate
}

func NewPatientService(patientRepo PatientRepository, validate *validator.Validate) *DefaultPatientService {
	return &DefaultPatientService{PatientRepo: patientRepo, Validate: validate}
}

func (p *DefaultPatientService) GetPatients(ctx context.Context) ([]*PatientResponse, apierror.ErrorResponse) {
	patients, err := p.PatientRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all patients: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*PatientResponse, len(patients))
	for i, patient := range patients {
		resp[i] = toPatientResponse(patient)
	}
	return resp, nil
}

func (p *DefaultPatientService) GetPatient(ctx context.Context, id int) (*PatientResponse, apierror.ErrorResponse) {
	patient, apierr := p.fetchPatient(ctx, id)
	if apierr != nil {
		return nil, apierr
	}
	return toPatientResponse(patient), nil
}

func (p *DefaultPatientService) CreatePatient(ctx context.Context, req *PatientRequest) (*PatientResponse, apierror.ErrorResponse) {
	if apierr := p.validate(req); apierr != nil {
		return nil, apierr
	}

	patient := &entity.Patient{
		Name:   *req.Name,
		Age:    *req.Age,
		Gender: *req.Gender,
	}

	err := p.PatientRepo.Save(ctx, patient)
	if err != nil {
		log.Errorf("failed to create patient: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPatientResponse(patient), nil
}

// UpdatePatient replaces every mutable field of the patient.
func (p *DefaultPatientService) UpdatePatient(ctx context.Context, id int, req *PatientRequest) (*PatientResponse, apierror.ErrorResponse) {
	if apierr := p.validate(req); apierr != nil {
		return nil, apierr
	}

	patient, apierr := p.fetchPatient(ctx, id)
	if apierr != nil {
		return nil, apierr
	}

	patient.Name = *req.Name
	patient.Age = *req.Age
	patient.Gender = *req.Gender

	err := p.PatientRepo.Save(ctx, patient)
	if err != nil {
		log.Errorf("failed to update patient %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toPatientResponse(patient), nil
}

// DeletePatient removes the patient only. Appointments pointing at it are
// left untouched.
func (p *DefaultPatientService) DeletePatient(ctx context.Context, id int) apierror.ErrorResponse {
	patient, apierr := p.fetchPatient(ctx, id)
	if apierr != nil {
		return apierr
	}

	err := p.PatientRepo.Delete(ctx, patient)
	if err != nil {
		log.Errorf("failed to delete patient %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (p *DefaultPatientService) fetchPatient(ctx context.Context, id int) (*entity.Patient, apierror.ErrorResponse) {
	patient, err := p.PatientRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to find patient %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if patient == nil {
		return nil, apierror.PatientNotFoundError
	}
	return patient, nil
}

func (p *DefaultPatientService) validate(req *PatientRequest) apierror.ErrorResponse {
	if err := p.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}
	return nil
}

func toPatientResponse(patient *entity.Patient) *PatientResponse {
	return &PatientResponse{
		ID:     patient.ID,
		Name:   patient.Name,
		Age:    patient.Age,
		Gender: patient.Gender,
	}
}
