package domain

import "fmt"

// Coordinate - географическая точка, полученная от геокодера
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// String returns "lat,lon", the order most providers expect.
func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lon)
}

// GeocodeResult is the first match a geocoder reports for an address.
type GeocodeResult struct {
	Coordinate  Coordinate `json:"coordinate"`
	DisplayName string     `json:"display_name"`
}

// RouteSummary carries aggregate route metrics in meters and seconds regardless of provider.
type RouteSummary struct {
	DistanceMeters    float64 `json:"distance_meters"`
	TravelTimeSeconds float64 `json:"travel_time_seconds"`
	Source            string  `json:"source,omitempty"`
}

// IsEmpty reports a route that should be treated as "no route found".
func (r RouteSummary) IsEmpty() bool {
	return r.DistanceMeters <= 0
}

// DistanceKm converts the route length to kilometers.
func (r RouteSummary) DistanceKm() float64 {
	return r.DistanceMeters / 1000
}

// RouteOptions - параметры запроса маршрута
type RouteOptions struct {
	TravelMode string
	Traffic    bool
	DepartAt   string
}

// DefaultRouteOptions mirrors a car trip leaving now with live traffic.
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		TravelMode: "car",
		Traffic:    true,
		DepartAt:   "now",
	}
}

// WithDefaults fills empty fields.
func (o RouteOptions) WithDefaults() RouteOptions {
	if o.TravelMode == "" {
		o.TravelMode = "car"
	}
	if o.DepartAt == "" {
		o.DepartAt = "now"
	}
	return o
}

// FareQuote is computed per request and never cached.
type FareQuote struct {
	Amount      float64     `json:"amount"`
	Currency    string      `json:"currency"`
	VehicleType VehicleType `json:"vehicle_type"`
	Provincial  bool        `json:"provincial"`
}

// TripDetails - агрегированный результат расчёта поездки
type TripDetails struct {
	Origin                string        `json:"origin"`
	Destination           string        `json:"destination"`
	OriginCoordinate      Coordinate    `json:"origin_coordinates"`
	DestinationCoordinate Coordinate    `json:"destination_coordinates"`
	Route                 RouteSummary  `json:"route"`
	DistanceKm            float64       `json:"distance_km"`
	TravelTimeMinutes     int           `json:"travel_time_minutes"`
	Fare                  FareQuote     `json:"fare"`
	Weather               WeatherReport `json:"weather"`
	News                  NewsFeed      `json:"news"`
	NearbyPlaces          NearbyPlaces  `json:"nearby_places"`
}
