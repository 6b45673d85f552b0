package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/pkg/utils"
	"github.com/trip-aggregator/internal/usecase"
	"github.com/trip-aggregator/internal/usecase/dto"
)

// FareRecordHandler - CRUD сохранённых расчётов тарифа
type FareRecordHandler struct {
	records FareRecordService
	logger  *zap.Logger
}

func NewFareRecordHandler(records FareRecordService, logger *zap.Logger) *FareRecordHandler {
	return &FareRecordHandler{
		records: records,
		logger:  logger,
	}
}

// Create godoc
// @Summary Создать запись тарифа
// @Tags Fares
// @Accept json
// @Produce json
// @Param request body dto.CreateFareRecordRequest true "Все поля обязательны"
// @Success 201 {object} utils.SuccessResponse{data=domain.FareRecord}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/fares [post]
func (h *FareRecordHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFareRecordRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	record, err := h.records.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, record)
}

// List godoc
// @Summary Список записей тарифа
// @Tags Fares
// @Produce json
// @Param limit query int false "Размер страницы (1-100)" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.FareRecordListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/fares [get]
func (h *FareRecordHandler) List(c *fiber.Ctx) error {
	var req dto.ListFareRecordsRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.records.List(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = usecase.DefaultFareRecordLimit
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:  result.Total,
		Limit:  limit,
		Offset: req.Offset,
	})
}

// Get godoc
// @Summary Получить запись тарифа
// @Tags Fares
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} utils.SuccessResponse{data=domain.FareRecord}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/fares/{id} [get]
func (h *FareRecordHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	record, err := h.records.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, record, nil)
}

// Update godoc
// @Summary Обновить запись тарифа
// @Description Меняются только переданные поля
// @Tags Fares
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param request body dto.UpdateFareRecordRequest true "Поля для обновления"
// @Success 200 {object} utils.SuccessResponse{data=domain.FareRecord}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/fares/{id} [put]
func (h *FareRecordHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateFareRecordRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	record, err := h.records.Update(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, record, nil)
}

// Delete godoc
// @Summary Удалить запись тарифа
// @Description Удаление несуществующей записи возвращает deleted=false
// @Tags Fares
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteFareRecordResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/fares/{id} [delete]
func (h *FareRecordHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	deleted, err := h.records.Delete(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DeleteFareRecordResponse{Deleted: deleted}, nil)
}
