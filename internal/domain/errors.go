package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput - отсутствует или некорректно обязательное поле
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound - геокодер не нашёл ни одного совпадения
	ErrNotFound = errors.New("no matching location")

	// ErrRouteUnavailable - ни основной, ни резервный источник маршрута не ответил
	ErrRouteUnavailable = errors.New("route unavailable")

	// ErrFareRecordNotFound - запись тарифа не существует
	ErrFareRecordNotFound = errors.New("fare record not found")
)

// InvalidInputError names the offending field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput builds an InvalidInputError.
func NewInvalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// ProviderError - ошибка внешнего провайдера (4xx/5xx, таймаут, битый ответ)
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: status %d: %s", e.Provider, e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Operation, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// GeocodeFailure - геокодирование одного из адресов не удалось, операция прерывается
type GeocodeFailure struct {
	Role    string
	Address string
	Err     error
}

func (e *GeocodeFailure) Error() string {
	return fmt.Sprintf("could not geocode %s address %q: %v", e.Role, e.Address, e.Err)
}

func (e *GeocodeFailure) Unwrap() error {
	return e.Err
}

// RouteUnavailableError keeps both route source failures for diagnostics.
type RouteUnavailableError struct {
	Primary  error
	Fallback error
}

func (e *RouteUnavailableError) Error() string {
	return fmt.Sprintf("route unavailable: primary: %v; fallback: %v", e.Primary, e.Fallback)
}

func (e *RouteUnavailableError) Unwrap() error {
	return ErrRouteUnavailable
}

// PersistenceError wraps store-layer failures.
type PersistenceError struct {
	Operation string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Operation, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
