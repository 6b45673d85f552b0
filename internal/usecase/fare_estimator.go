package usecase

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
)

// RateTable - единая таблица тарифов для всех типов транспорта
type RateTable struct {
	Currency               string
	JeepneyBaseFare        float64
	JeepneyPerKmRate       float64
	ProvincialMultiplier   float64
	MinProvincialFare      float64
	ProvincialBusPerKmRate float64
	LocalHubLegFare        float64
	LocalBusBaseFare       float64
	LocalBusPerKmRate      float64
	TaxiFlagDown           float64
	TaxiPerKmRate          float64
	PrivateCarFlagDown     float64
	PrivateCarPerKmRate    float64
	ProvincialDistanceKm   float64
	ProvincialKeywords     []string
	LocalHubKeywords       []string
}

// NewRateTable copies the configured rates and lowercases the keyword lists.
func NewRateTable(cfg config.FareConfig) RateTable {
	return RateTable{
		Currency:               cfg.Currency,
		JeepneyBaseFare:        cfg.JeepneyBaseFare,
		JeepneyPerKmRate:       cfg.JeepneyPerKmRate,
		ProvincialMultiplier:   cfg.ProvincialMultiplier,
		MinProvincialFare:      cfg.MinProvincialFare,
		ProvincialBusPerKmRate: cfg.ProvincialBusPerKmRate,
		LocalHubLegFare:        cfg.LocalHubLegFare,
		LocalBusBaseFare:       cfg.LocalBusBaseFare,
		LocalBusPerKmRate:      cfg.LocalBusPerKmRate,
		TaxiFlagDown:           cfg.TaxiFlagDown,
		TaxiPerKmRate:          cfg.TaxiPerKmRate,
		PrivateCarFlagDown:     cfg.PrivateCarFlagDown,
		PrivateCarPerKmRate:    cfg.PrivateCarPerKmRate,
		ProvincialDistanceKm:   cfg.ProvincialDistanceKm,
		ProvincialKeywords:     lowerAll(cfg.ProvincialKeywords),
		LocalHubKeywords:       lowerAll(cfg.LocalHubKeywords),
	}
}

// FareEstimator - чистая функция расчёта тарифа, без I/O
type FareEstimator struct {
	rates  RateTable
	logger *zap.Logger
}

// NewFareEstimator создает FareEstimator
func NewFareEstimator(rates RateTable, logger *zap.Logger) *FareEstimator {
	return &FareEstimator{
		rates:  rates,
		logger: logger,
	}
}

// Rates returns the table the estimator was built with.
func (e *FareEstimator) Rates() RateTable {
	return e.rates
}

// IsProvincial - дальняя поездка по расстоянию или по ключевому слову в пункте назначения
func (e *FareEstimator) IsProvincial(destination string, distanceKm float64) bool {
	if distanceKm > e.rates.ProvincialDistanceKm {
		return true
	}
	return containsAny(destination, e.rates.ProvincialKeywords)
}

// IsLocalHub reports whether the origin lies in a known urban hub.
func (e *FareEstimator) IsLocalHub(origin string) bool {
	return containsAny(origin, e.rates.LocalHubKeywords)
}

// EstimateFare возвращает тариф, округлённый до целой единицы валюты.
// Нераспознанный тип транспорта не отклоняется: применяется местный тариф джипни.
func (e *FareEstimator) EstimateFare(
	origin, destination string,
	distanceKm float64,
	vehicleType domain.VehicleType,
) domain.FareQuote {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}

	r := e.rates
	provincial := e.IsProvincial(destination, distanceKm)

	var amount float64
	switch vehicleType {
	case domain.VehicleJeepney:
		if provincial {
			amount = math.Max(r.JeepneyBaseFare,
				math.Max(distanceKm*r.JeepneyPerKmRate*r.ProvincialMultiplier, r.MinProvincialFare))
		} else {
			amount = r.JeepneyBaseFare * 2
		}

	case domain.VehicleBus:
		if provincial {
			if e.IsLocalHub(origin) {
				amount = r.LocalHubLegFare
			}
			amount += math.Max(r.MinProvincialFare, distanceKm*r.ProvincialBusPerKmRate)
		} else {
			e.logger.Warn("Bus fare requested for a local trip",
				zap.String("origin", origin),
				zap.String("destination", destination),
				zap.Float64("distance_km", distanceKm))
			amount = r.LocalBusBaseFare + distanceKm*r.LocalBusPerKmRate
		}

	case domain.VehicleTaxi:
		amount = r.TaxiFlagDown + distanceKm*r.TaxiPerKmRate

	case domain.VehiclePrivateCar:
		amount = r.PrivateCarFlagDown + distanceKm*r.PrivateCarPerKmRate

	default:
		e.logger.Warn("Unrecognized vehicle type, using jeepney local fare",
			zap.String("vehicle_type", string(vehicleType)))
		vehicleType = domain.VehicleJeepney
		provincial = false
		amount = r.JeepneyBaseFare * 2
	}

	return domain.FareQuote{
		Amount:      math.Max(0, math.Round(amount)),
		Currency:    r.Currency,
		VehicleType: vehicleType,
		Provincial:  provincial,
	}
}

func containsAny(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}
