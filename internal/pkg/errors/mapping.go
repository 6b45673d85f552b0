package errors

import (
	"context"
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/trip-aggregator/internal/domain"
)

// FromError переводит доменную ошибку в AppError.
// Сырые ответы провайдеров наружу не попадают, только статус.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		details := make(map[string]interface{}, len(validationErrs))
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
		return ErrInvalidInput.WithDetails(details)
	}

	var invalid *domain.InvalidInputError
	if stderrors.As(err, &invalid) {
		return ErrInvalidInput.WithDetails(map[string]interface{}{
			invalid.Field: invalid.Reason,
		})
	}

	var geocodeErr *domain.GeocodeFailure
	if stderrors.As(err, &geocodeErr) {
		details := map[string]interface{}{
			"address": geocodeErr.Address,
			"role":    geocodeErr.Role,
		}
		switch {
		case stderrors.Is(geocodeErr.Err, domain.ErrNotFound):
			return ErrGeocodeNotFound.WithDetails(details)
		case stderrors.Is(geocodeErr.Err, domain.ErrInvalidInput):
			return ErrInvalidInput.WithDetails(map[string]interface{}{
				geocodeErr.Role + "_address": "required",
			})
		}
		if status := providerStatus(geocodeErr.Err); status > 0 {
			details["upstream_status"] = status
		}
		return ErrGeocodeProvider.WithDetails(details)
	}

	var routeErr *domain.RouteUnavailableError
	if stderrors.As(err, &routeErr) {
		details := map[string]interface{}{}
		if status := providerStatus(routeErr.Primary); status > 0 {
			details["primary_status"] = status
		}
		if status := providerStatus(routeErr.Fallback); status > 0 {
			details["fallback_status"] = status
		}
		if len(details) == 0 {
			return ErrRouteUnavailable
		}
		return ErrRouteUnavailable.WithDetails(details)
	}

	if stderrors.Is(err, domain.ErrRouteUnavailable) {
		return ErrRouteUnavailable
	}

	if stderrors.Is(err, domain.ErrFareRecordNotFound) {
		return ErrFareRecordNotFound
	}

	var persistErr *domain.PersistenceError
	if stderrors.As(err, &persistErr) {
		return ErrPersistence
	}

	var providerErr *domain.ProviderError
	if stderrors.As(err, &providerErr) {
		details := map[string]interface{}{"provider": providerErr.Provider}
		if providerErr.StatusCode > 0 {
			details["upstream_status"] = providerErr.StatusCode
		}
		return ErrProvider.WithDetails(details)
	}

	if stderrors.Is(err, domain.ErrNotFound) {
		return ErrGeocodeNotFound
	}

	if stderrors.Is(err, domain.ErrInvalidInput) {
		return ErrInvalidInput
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	if stderrors.Is(err, context.Canceled) {
		return ErrCancelled
	}

	return ErrInternalServer
}

func providerStatus(err error) int {
	var providerErr *domain.ProviderError
	if stderrors.As(err, &providerErr) {
		return providerErr.StatusCode
	}
	return 0
}
