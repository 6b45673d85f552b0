package errors

import (
	"fmt"
	"net/http"
)

// AppError - ошибка, которая отдаётся клиенту
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy so catalogue errors stay untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy with a different message.
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// StatusClientClosedRequest - нестандартный статус nginx для отменённых клиентом запросов
const StatusClientClosedRequest = 499

var (
	ErrInvalidInput = New(
		CodeInvalidInput,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrGeocodeNotFound = New(
		CodeGeocodeNotFound,
		"Address could not be found. Try including the city or region (e.g., 'Pagatpat, Cagayan de Oro, Philippines').",
		http.StatusNotFound,
	)

	ErrGeocodeProvider = New(
		CodeGeocodeProviderError,
		"Geocoding provider is unavailable",
		http.StatusBadGateway,
	)

	ErrRouteUnavailable = New(
		CodeRouteUnavailable,
		"Could not determine route and distance from any routing provider",
		http.StatusServiceUnavailable,
	)

	ErrProvider = New(
		CodeProviderError,
		"Upstream provider error",
		http.StatusBadGateway,
	)

	ErrFareRecordNotFound = New(
		CodeFareRecordNotFound,
		"Fare record not found",
		http.StatusNotFound,
	)

	ErrPersistence = New(
		CodePersistenceError,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrTimeout = New(
		CodeTimeout,
		"Request timed out",
		http.StatusGatewayTimeout,
	)

	// ErrCancelled - запрос отменён вызывающей стороной
	ErrCancelled = New(
		CodeCancelled,
		"Request was cancelled",
		StatusClientClosedRequest,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"An unexpected error occurred. Please try again later.",
		http.StatusInternalServerError,
	)
)
