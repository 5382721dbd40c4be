package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/horus-listing/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// PlainErrorResponse - плоский формат ошибки публичного /api/property
type PlainErrorResponse struct {
	Error string `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Matched  *int    `json:"matched,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendCreated - то же, что SendSuccess, со статусом 201
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// SendPlainError - ответ вида {"error": "..."}
func SendPlainError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(PlainErrorResponse{Error: message})
}
