package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/pkg/utils"
	"github.com/trip-aggregator/internal/usecase/dto"
)

// LookupHandler - прямые запросы к геокодеру, погоде, новостям и местам
type LookupHandler struct {
	lookup LookupService
	logger *zap.Logger
}

func NewLookupHandler(lookup LookupService, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		lookup: lookup,
		logger: logger,
	}
}

// Geocode godoc
// @Summary Геокодирование адреса
// @Tags Lookup
// @Accept json
// @Produce json
// @Param address query string true "Адрес"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/geocode [get]
func (h *LookupHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	return h.geocode(c, req.Address)
}

// GeocodeByPath godoc
// @Summary Геокодирование адреса из пути
// @Tags Lookup
// @Produce json
// @Param address path string true "Адрес (URL-encoded)"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/geocode/{address} [get]
func (h *LookupHandler) GeocodeByPath(c *fiber.Ctx) error {
	address, err := url.PathUnescape(c.Params("address"))
	if err != nil {
		return utils.SendError(c, domain.NewInvalidInput("address", "is not a valid path segment"))
	}
	return h.geocode(c, address)
}

func (h *LookupHandler) geocode(c *fiber.Ctx, address string) error {
	result, err := h.lookup.Geocode(c.UserContext(), address)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Weather godoc
// @Summary Текущая погода
// @Description Сбой провайдера возвращается как status=unavailable, а не как ошибка
// @Tags Lookup
// @Produce json
// @Param city query string true "Город"
// @Success 200 {object} utils.SuccessResponse{data=domain.WeatherReport}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/weather [get]
func (h *LookupHandler) Weather(c *fiber.Ctx) error {
	var req dto.WeatherRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, h.lookup.Weather(c.UserContext(), req.City), nil)
}

// News godoc
// @Summary Новости по запросу
// @Tags Lookup
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse{data=domain.NewsFeed}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/news [get]
func (h *LookupHandler) News(c *fiber.Ctx) error {
	var req dto.NewsRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	feed := h.lookup.News(c.UserContext(), req.Query)
	return utils.SendSuccess(c, feed, &utils.Meta{Total: len(feed.Articles)})
}

// Places godoc
// @Summary Места рядом с точкой
// @Tags Lookup
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param query query string false "Категория" default(restaurant)
// @Param radius query int false "Радиус в метрах (1-100000)" default(1500)
// @Param limit query int false "Количество (1-50)" default(5)
// @Success 200 {object} utils.SuccessResponse{data=domain.NearbyPlaces}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *LookupHandler) Places(c *fiber.Ctx) error {
	var req dto.PlacesRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	places, err := h.lookup.Places(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, places, &utils.Meta{Total: len(places.Places)})
}
