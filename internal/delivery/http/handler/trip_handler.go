package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/pkg/utils"
	"github.com/trip-aggregator/internal/usecase/dto"
)

// TripHandler - обработчик расчёта поездки и тарифа
type TripHandler struct {
	trips  TripService
	logger *zap.Logger
}

// NewTripHandler - создание нового TripHandler
func NewTripHandler(trips TripService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		trips:  trips,
		logger: logger,
	}
}

// GetTrip godoc
// @Summary Расчёт поездки
// @Description Геокодирует оба адреса, строит маршрут (TomTom, при сбое - геокодер), считает тариф и добавляет погоду, новости и места рядом с пунктом назначения. Недоступные обогащения помечаются статусом unavailable и не ломают ответ.
// @Tags Trip
// @Accept json
// @Produce json
// @Param origin_address query string true "Адрес отправления"
// @Param destination_address query string true "Адрес назначения"
// @Param vehicle_type query string false "jeepney, bus, taxi, private_car" default(jeepney)
// @Param query query string false "Категория мест рядом с назначением" default(restaurant)
// @Success 200 {object} utils.SuccessResponse{data=domain.TripDetails}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trip [get]
func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	var req dto.TripRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	trip, err := h.trips.ComputeTripDetails(
		c.UserContext(),
		req.OriginAddress,
		req.DestinationAddress,
		domain.VehicleType(req.VehicleType),
		req.Query,
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trip, &utils.Meta{
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// PostTrip godoc
// @Summary Расчёт поездки (POST)
// @Description То же, что GET /trip, параметры передаются в теле запроса
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body dto.TripRequest true "Адреса и тип транспорта"
// @Success 200 {object} utils.SuccessResponse{data=domain.TripDetails}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trip [post]
func (h *TripHandler) PostTrip(c *fiber.Ctx) error {
	return h.GetTrip(c)
}

// GetFare godoc
// @Summary Расчёт тарифа
// @Description Геокодирование, маршрут и тариф без погоды, новостей и мест
// @Tags Trip
// @Produce json
// @Param origin_address query string true "Адрес отправления"
// @Param destination_address query string true "Адрес назначения"
// @Param vehicle_type query string false "jeepney, bus, taxi, private_car" default(jeepney)
// @Success 200 {object} utils.SuccessResponse{data=dto.FareEstimateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/fare [get]
func (h *TripHandler) GetFare(c *fiber.Ctx) error {
	var req dto.FareEstimateRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	fare, err := h.trips.ComputeFare(
		c.UserContext(),
		req.OriginAddress,
		req.DestinationAddress,
		domain.VehicleType(req.VehicleType),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fare, nil)
}
