package dto

// TripRequest - запрос на расчёт поездки (query для GET, body для POST)
type TripRequest struct {
	OriginAddress      string `json:"origin_address" query:"origin_address" validate:"required,notblank,max=500"`
	DestinationAddress string `json:"destination_address" query:"destination_address" validate:"required,notblank,max=500"`
	VehicleType        string `json:"vehicle_type,omitempty" query:"vehicle_type" validate:"omitempty,max=32"`
	Query              string `json:"query,omitempty" query:"query" validate:"omitempty,max=100"`
}

// FareEstimateRequest - упрощённый расчёт тарифа без обогащения
type FareEstimateRequest struct {
	OriginAddress      string `json:"origin_address" query:"origin_address" validate:"required,notblank,max=500"`
	DestinationAddress string `json:"destination_address" query:"destination_address" validate:"required,notblank,max=500"`
	VehicleType        string `json:"vehicle_type,omitempty" query:"vehicle_type" validate:"omitempty,max=32"`
}

// GeocodeRequest - геокодирование одного адреса
type GeocodeRequest struct {
	Address string `json:"address" query:"address" validate:"required,notblank,max=500"`
}

// WeatherRequest - погода по названию города
type WeatherRequest struct {
	City string `json:"city" query:"city" validate:"required,notblank,max=200"`
}

// NewsRequest - новости по запросу
type NewsRequest struct {
	Query string `json:"q" query:"q" validate:"required,notblank,max=200"`
}

// PlacesRequest - места рядом с точкой. Radius и limit вне диапазона молча ограничиваются.
type PlacesRequest struct {
	Lat    *float64 `json:"lat" query:"lat" validate:"required,min=-90,max=90"`
	Lon    *float64 `json:"lon" query:"lon" validate:"required,min=-180,max=180"`
	Query  string   `json:"query,omitempty" query:"query" validate:"omitempty,max=100"`
	Radius int      `json:"radius,omitempty" query:"radius"`
	Limit  int      `json:"limit,omitempty" query:"limit"`
}

// CreateFareRecordRequest - все поля обязательны
type CreateFareRecordRequest struct {
	OriginAddress      string   `json:"origin_address" validate:"required,notblank,max=500"`
	DestinationAddress string   `json:"destination_address" validate:"required,notblank,max=500"`
	VehicleType        string   `json:"vehicle_type" validate:"required,vehicle_type"`
	DistanceKm         *float64 `json:"distance_km" validate:"required,gte=0"`
	TravelTimeMinutes  *int     `json:"travel_time_minutes" validate:"required,gte=0"`
	ExpectedFare       *float64 `json:"expected_fare" validate:"required,gte=0"`
	BaseFare           *float64 `json:"base_fare" validate:"required,gte=0"`
	DistanceRatePerKm  *float64 `json:"distance_rate_per_km" validate:"required,gte=0"`
}

// UpdateFareRecordRequest - все поля опциональны, идентификатор берётся из пути
type UpdateFareRecordRequest struct {
	OriginAddress      *string  `json:"origin_address,omitempty" validate:"omitempty,notblank,max=500"`
	DestinationAddress *string  `json:"destination_address,omitempty" validate:"omitempty,notblank,max=500"`
	VehicleType        *string  `json:"vehicle_type,omitempty" validate:"omitempty,vehicle_type"`
	DistanceKm         *float64 `json:"distance_km,omitempty" validate:"omitempty,gte=0"`
	TravelTimeMinutes  *int     `json:"travel_time_minutes,omitempty" validate:"omitempty,gte=0"`
	ExpectedFare       *float64 `json:"expected_fare,omitempty" validate:"omitempty,gte=0"`
	BaseFare           *float64 `json:"base_fare,omitempty" validate:"omitempty,gte=0"`
	DistanceRatePerKm  *float64 `json:"distance_rate_per_km,omitempty" validate:"omitempty,gte=0"`
}

// ListFareRecordsRequest - пагинация списка записей
type ListFareRecordsRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}
