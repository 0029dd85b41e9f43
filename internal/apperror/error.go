package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind tells how an error reached the console.
type Kind int

const (
	// KindValidation is a client-side check that failed before any request was sent.
	KindValidation Kind = iota
	// KindServer is a non-success response carrying the API's {message} envelope.
	KindServer
	// KindTransport is a network failure or a body that could not be decoded.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

const RequiredFieldsMessage = "Please fill required fields"

var (
	ErrRequiredFields  = NewValidationError(RequiredFieldsMessage)
	ErrInProgress      = NewValidationError("Request already in progress")
	ErrUnsupportedFile = NewValidationError("Only .jpg, .jpeg and .png images are allowed")
	ErrFileTooLarge    = NewValidationError("Image is too large")
)

// AppError shares its JSON shape with the API failure envelope.
type AppError struct {
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
	Status  int    `json:"-"`
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
		Kind:    KindServer,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Message: message,
		Kind:    KindValidation,
	}
}

func NewServerError(status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	return &AppError{
		Message: message,
		Kind:    KindServer,
		Status:  status,
	}
}

func NewTransportError(err error) *AppError {
	return &AppError{
		Message: err.Error(),
		Kind:    KindTransport,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

// KindOf reports the kind of err. Errors that are not an *AppError count as transport failures.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindTransport
}

// NewValidationErr collapses missing required values into ErrRequiredFields; any other rule
// violation is reported per field.
func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required", "min":
			return ErrRequiredFields
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "numeric", "positive", "gt", "gte":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be a positive number", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return NewValidationError(strings.Join(errMsgs, ", "))
}

// FromValidation converts the result of validator.Struct into an *AppError.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return NewValidationErr(validationErrs)
	}

	return NewValidationError(err.Error())
}

func internalError() *AppError {
	return NewAppError("internal error")
}
