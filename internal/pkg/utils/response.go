package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-aggregator/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	Offset   int     `json:"offset,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Data: data,
	})
}

// SendError отдаёт ошибку в формате {error: {code, message, details}}
func SendError(c *fiber.Ctx, err error) error {
	appErr := errors.FromError(err)
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
