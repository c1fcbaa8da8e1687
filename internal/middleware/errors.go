package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/services"
)

// statusOf maps domain errors to HTTP statuses.
var statusOf = []struct {
	err    error
	status int
}{
	{repository.ErrNotFound, fiber.StatusNotFound},
	{repository.ErrDuplicate, fiber.StatusConflict},
	{services.ErrMissingCredentials, fiber.StatusBadRequest},
	{services.ErrUnknownID, fiber.StatusUnauthorized},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{services.ErrInvalidToken, fiber.StatusUnauthorized},
	{services.ErrUnsupportedFile, fiber.StatusBadRequest},
	{services.ErrEmptySheet, fiber.StatusBadRequest},
	{services.ErrPasswordTooLong, fiber.StatusBadRequest},
}

// ErrorHandler renders every error as the response envelope. Anything it
// does not recognise is logged and reported as a generic 500.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, msg := classify(err)
		if code >= fiber.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method":     c.Method(),
				"path":       c.Path(),
				"request_id": RequestID(c),
			}).Error("request failed")
		}
		return c.Status(code).JSON(dto.Fail(msg))
	}
}

func classify(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			return fe.Code, "internal server error"
		}
		return fe.Code, fe.Message
	}
	if msg, ok := dto.ValidationMessage(errors.Cause(err)); ok {
		return fiber.StatusBadRequest, msg
	}
	for _, m := range statusOf {
		if errors.Is(err, m.err) {
			return m.status, m.err.Error()
		}
	}
	return fiber.StatusInternalServerError, "internal server error"
}
