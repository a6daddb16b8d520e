package routes

import (
	"context"
	"net/http"
	"patientsapi/cmd/internal/service"
	"patientsapi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PatientService interface {
	GetPatients(ctx context.Context) ([]*service.PatientResponse, apierror.ErrorResponse)
	GetPatient(ctx context.Context, id int) (*service.PatientResponse, apierror.ErrorResponse)
	CreatePatient(ctx context.Context, req *service.PatientRequest) (*service.PatientResponse, apierror.ErrorResponse)
	UpdatePatient(ctx context.Context, id int, req *service.PatientRequest) (*service.PatientResponse, apierror.ErrorResponse)
	DeletePatient(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultPatientRoute struct {
	PatientService PatientService
}

func NewPatientDefault(patientService PatientService) *DefaultPatientRoute {
	return &DefaultPatientRoute{PatientService: patientService}
}

func (p *DefaultPatientRoute) GetPatients(c echo.Context) error {
	patients, apierr := p.PatientService.GetPatients(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patients)
}

func (p *DefaultPatientRoute) GetPatient(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	patient, apierr := p.PatientService.GetPatient(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patient)
}

func (p *DefaultPatientRoute) CreatePatient(c echo.Context) error {
	var req service.PatientRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.FromBindError(err)
		return c.JSON(apierr.Code(), apierr)
	}

	patient, apierr := p.PatientService.CreatePatient(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, patient)
}

func (p *DefaultPatientRoute) UpdatePatient(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.PatientRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.FromBindError(err)
		return c.JSON(apierr.Code(), apierr)
	}

	patient, apierr := p.PatientService.UpdatePatient(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patient)
}

func (p *DefaultPatientRoute) DeletePatient(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	apierr = p.PatientService.DeletePatient(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
