package domain

import "time"

// EnrichmentStatus distinguishes "provider failed" from "provider returned nothing".
type EnrichmentStatus string

const (
	EnrichmentOK          EnrichmentStatus = "ok"
	EnrichmentUnavailable EnrichmentStatus = "unavailable"
)

// WeatherSnapshot - текущая погода в пункте назначения
type WeatherSnapshot struct {
	City               string    `json:"city"`
	Description        string    `json:"description"`
	Condition          string    `json:"condition"`
	TemperatureCelsius float64   `json:"temperature_celsius"`
	FeelsLikeCelsius   float64   `json:"feels_like_celsius"`
	HumidityPct        float64   `json:"humidity_pct"`
	WindSpeedMS        float64   `json:"wind_speed_ms"`
	ObservedAt         time.Time `json:"observed_at"`
}

// WeatherReport is either a snapshot or an unavailable marker with a reason.
type WeatherReport struct {
	Status   EnrichmentStatus `json:"status"`
	Reason   string           `json:"reason,omitempty"`
	Snapshot *WeatherSnapshot `json:"snapshot,omitempty"`
}

// NewsArticle - новость, связанная с пунктом назначения
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// NewsFeed holds articles or an unavailable marker. Articles is never nil.
type NewsFeed struct {
	Status   EnrichmentStatus `json:"status"`
	Reason   string           `json:"reason,omitempty"`
	Articles []NewsArticle    `json:"articles"`
}

// Place - точка интереса рядом с координатой
type Place struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []string   `json:"categories"`
	Address    string     `json:"address"`
	DistanceM  float64    `json:"distance_m"`
	Coordinate Coordinate `json:"coordinate"`
}

// NearbyPlaces holds places or an unavailable marker. Places is never nil.
type NearbyPlaces struct {
	Status EnrichmentStatus `json:"status"`
	Reason string           `json:"reason,omitempty"`
	Places []Place          `json:"places"`
}

// Bounds accepted by the places provider.
const (
	MinPlacesRadius = 1
	MaxPlacesRadius = 100000
	MinPlacesLimit  = 1
	MaxPlacesLimit  = 50
)

// PlacesQuery - параметры поиска точек интереса
type PlacesQuery struct {
	Center  Coordinate
	Query   string
	RadiusM int
	Limit   int
}

// Clamped returns a copy with radius and limit forced into provider-safe bounds.
func (q PlacesQuery) Clamped() PlacesQuery {
	q.RadiusM = clamp(q.RadiusM, MinPlacesRadius, MaxPlacesRadius)
	q.Limit = clamp(q.Limit, MinPlacesLimit, MaxPlacesLimit)
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// UnavailableWeather builds the sentinel weather value.
func UnavailableWeather(reason string) WeatherReport {
	return WeatherReport{Status: EnrichmentUnavailable, Reason: reason}
}

// UnavailableNews builds the sentinel news value.
func UnavailableNews(reason string) NewsFeed {
	return NewsFeed{Status: EnrichmentUnavailable, Reason: reason, Articles: []NewsArticle{}}
}

// UnavailablePlaces builds the sentinel places value.
func UnavailablePlaces(reason string) NearbyPlaces {
	return NearbyPlaces{Status: EnrichmentUnavailable, Reason: reason, Places: []Place{}}
}
