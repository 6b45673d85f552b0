package dto

import "github.com/trip-aggregator/internal/domain"

// FareEstimateResponse - ответ /fare: только маршрут и тариф
type FareEstimateResponse struct {
	Origin            string             `json:"origin"`
	Destination       string             `json:"destination"`
	DistanceKm        float64            `json:"distance_km"`
	TravelTimeMinutes int                `json:"travel_time_minutes"`
	ExpectedFare      float64            `json:"expected_fare"`
	VehicleType       domain.VehicleType `json:"vehicle_type"`
	Currency          string             `json:"currency"`
	Provincial        bool               `json:"provincial"`
	RouteSource       string             `json:"route_source,omitempty"`
}

// GeocodeResponse - результат геокодирования
type GeocodeResponse struct {
	Address     string  `json:"address"`
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// FareRecordListResponse - страница записей тарифов
type FareRecordListResponse struct {
	Records []*domain.FareRecord `json:"records"`
	Total   int                  `json:"total"`
}

// DeleteFareRecordResponse - результат удаления
type DeleteFareRecordResponse struct {
	Deleted bool `json:"deleted"`
}
