package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is an error that knows the HTTP status it should be
// reported with. Implementations are written to the client as JSON.
type ErrorResponse interface {
	error
	Code() int
}

type SimpleError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func NewSimple(status int, message string) *SimpleError {
	return &SimpleError{Status: status, Message: message}
}

func (e *SimpleError) Error() string { return e.Message }
func (e *SimpleError) Code() int { return e.Status }

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ValidationError struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Fields  []*FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s %s", e.Message, e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Code() int { return e.Status }

var (
	InternalServerError      = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError       = NewSimple(http.StatusUnprocessableEntity, "Request body is malformed")
	PatientNotFoundError     = NewSimple(http.StatusNotFound, "Patient not found")
	AppointmentNotFoundError = NewSimple(http.StatusNotFound, "Appointment not found")
	DatabaseUnavailableError = NewSimple(http.StatusServiceUnavailable, "Database unavailable")
)

func NewMissingParamError(name string) *SimpleError {
	return NewSimple(http.StatusUnprocessableEntity, fmt.Sprintf("Missing required parameter '%s'", name))
}

func NewInvalidParamTypeError(name, typ string) *SimpleError {
	return NewSimple(http.StatusUnprocessableEntity, fmt.Sprintf("Parameter '%s' must be of type %s", name, typ))
}

// FromValidationError converts the error returned by validator.Struct into
// a 422 response listing every failing field.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]*FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = &FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: ruleMessage(fe),
		}
	}
	return &ValidationError{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// FromBindError reports a body that could not be decoded. Type mismatches
// name the offending field.
func FromBindError(err error) ErrorResponse {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{
			Status:  http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Fields: []*FieldError{{
				Field:   typeErr.Field,
				Rule:    "type",
				Message: fmt.Sprintf("must be of type %s", jsonTypeName(typeErr.Type.Kind().String())),
			}},
		}
	}
	return MalformedBodyError
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "timestamp":
		return "must be an ISO 8601 timestamp"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	}
	return fmt.Sprintf("failed the '%s' rule", fe.Tag())
}

func jsonTypeName(kind string) string {
	switch kind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "integer"
	case "float32", "float64":
		return "number"
	case "ptr":
		return "value"
	}
	return kind
}
