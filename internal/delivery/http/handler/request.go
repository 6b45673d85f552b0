package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/trip-aggregator/internal/domain"
	"github.com/trip-aggregator/internal/pkg/errors"
	"github.com/trip-aggregator/internal/pkg/validator"
)

var errInvalidBody = errors.ErrInvalidInput.WithMessage("Invalid request body")

// bindRequest читает параметры из query для GET и из тела для остальных методов, затем валидирует
func bindRequest(c *fiber.Ctx, req interface{}) error {
	if c.Method() == fiber.MethodGet {
		if err := c.QueryParser(req); err != nil {
			return errors.ErrInvalidInput.WithMessage("Invalid query parameters")
		}
	} else if err := c.BodyParser(req); err != nil {
		return errInvalidBody
	}

	return validator.Validate(req)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewInvalidInput("id", "must be a positive integer")
	}
	return id, nil
}
