package service

import (
	"context"
	"patientsapi/cmd/internal/domain/entity"
	"patientsapi/cmd/internal/utils"
	"patientsapi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]*entity.Appointment, error)
	Save(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, appointment *entity.Appointment) error
}

type AppointmentRequest struct {
	PatientID *int    `json:"patient_id" validate:"required"`
	Date      *string `json:"date" validate:"required,timestamp"`
	Reason    *string `json:"reason" validate:"required"`
}

type AppointmentResponse struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patient_id"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
}

// DefaultAppointmentService never looks up the referenced patient: an
// appointment may point at a patient id that does not exist.
type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Validate: validate}
}

func (a *DefaultAppointmentService) GetAppointments(ctx context.Context) ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return response, nil
}

func (a *DefaultAppointmentService) GetAppointment(ctx context.Context, id int) (*AppointmentResponse, apierror.ErrorResponse) {
	appt, apierr := a.fetchAppointment(ctx, id)
	if apierr != nil {
		return nil, apierr
	}
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) CreateAppointment(ctx context.Context, req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	date, apierr := a.validate(req)
	if apierr != nil {
		return nil, apierr
	}

	appointment := &entity.Appointment{
		PatientID: *req.PatientID,
		Date:      date,
		Reason:    *req.Reason,
	}

	err := a.AppointmentRepo.Save(ctx, appointment)
	if err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appointment), nil
}

func (a *DefaultAppointmentService) UpdateAppointment(ctx context.Context, id int, req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	date, apierr := a.validate(req)
	if apierr != nil {
		return nil, apierr
	}

	appt, apierr := a.fetchAppointment(ctx, id)
	if apierr != nil {
		return nil, apierr
	}

	appt.PatientID = *req.PatientID
	appt.Date = date
	appt.Reason = *req.Reason

	err := a.AppointmentRepo.Save(ctx, appt)
	if err != nil {
		log.Errorf("failed to update appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) DeleteAppointment(ctx context.Context, id int) apierror.ErrorResponse {
	appt, apierr := a.fetchAppointment(ctx, id)
	if apierr != nil {
		return apierr
	}

	err := a.AppointmentRepo.Delete(ctx, appt)
	if err != nil {
		log.Errorf("failed to delete appointment %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (a *DefaultAppointmentService) fetchAppointment(ctx context.Context, id int) (*entity.Appointment, apierror.ErrorResponse) {
	appt, err := a.AppointmentRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch appointment by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.AppointmentNotFoundError
	}
	return appt, nil
}

// validate checks the request and returns its date as epoch microseconds.
func (a *DefaultAppointmentService) validate(req *AppointmentRequest) (int64, apierror.ErrorResponse) {
	if err := a.Validate.Struct(req); err != nil {
		return 0, apierror.FromValidationError(err)
	}

	date, err := utils.FromTimestamp(*req.Date)
	if err != nil {
		return 0, apierror.MalformedBodyError
	}
	return date, nil
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        appt.ID,
		PatientID: appt.PatientID,
		Date:      utils.FormatEpoch(appt.Date),
		Reason:    appt.Reason,
	}
}
