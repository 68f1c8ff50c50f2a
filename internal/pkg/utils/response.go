package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donor-matching-service/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	Cached   bool    `json:"cached,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError renders err as an AppError; unknown errors become 500.
func SendError(c *fiber.Ctx, err error) error {
	appErr := errors.Resolve(err)
	if appErr == nil {
		appErr = errors.ErrInternalServer
	}

	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
