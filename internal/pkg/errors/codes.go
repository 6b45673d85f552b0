package errors

const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeGeocodeNotFound      = "GEOCODE_NOT_FOUND"
	CodeGeocodeProviderError = "GEOCODE_PROVIDER_ERROR"
	CodeRouteUnavailable     = "ROUTE_UNAVAILABLE"
	CodeProviderError        = "PROVIDER_ERROR"
	CodeFareRecordNotFound   = "FARE_RECORD_NOT_FOUND"
	CodePersistenceError     = "PERSISTENCE_ERROR"
	CodeTimeout              = "TIMEOUT"
	CodeCancelled            = "REQUEST_CANCELLED"
	CodeInternalServer       = "INTERNAL_SERVER_ERROR"
	CodeRouteNotFound        = "NOT_FOUND"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
)
