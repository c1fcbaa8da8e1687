package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/utils"
)

const (
	DefaultStoreTimeout  = 10 * time.Second
	DefaultImportTimeout = 5 * time.Minute

	timeoutsKey = "timeouts"
)

// Timeouts bound the store calls a handler makes. Import covers a whole
// spreadsheet batch.
type Timeouts struct {
	Store  time.Duration
	Import time.Duration
}

// WithTimeouts makes t visible to the handlers behind it.
func WithTimeouts(t Timeouts) fiber.Handler {
	if t.Store <= 0 {
		t.Store = DefaultStoreTimeout
	}
	if t.Import <= 0 {
		t.Import = DefaultImportTimeout
	}
	return func(c *fiber.Ctx) error {
		c.Locals(timeoutsKey, t)
		return c.Next()
	}
}

func timeouts(c *fiber.Ctx) Timeouts {
	if t, ok := c.Locals(timeoutsKey).(Timeouts); ok {
		return t
	}
	return Timeouts{Store: DefaultStoreTimeout, Import: DefaultImportTimeout}
}

func dbCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeouts(c).Store)
}

func importCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeouts(c).Import)
}

// parseBody decodes the JSON body and runs its validate tags.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return dto.Validate(out)
}

func parseID(raw string) (bson.ObjectID, error) {
	if strings.TrimSpace(raw) == "" {
		return bson.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "missing id")
	}
	oid, err := utils.Oid(raw)
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return oid, nil
}

// targetID picks the id from the body, falling back to ?id=.
func targetID(c *fiber.Ctx, bodyID string) (bson.ObjectID, error) {
	if bodyID == "" {
		bodyID = c.Query("id")
	}
	return parseID(bodyID)
}

// notFound turns a missing document into a 404 with msg.
func notFound(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}

func page(c *fiber.Ctx) utils.Page {
	return utils.ParsePage(c.Query("page"), c.Query("limit"))
}

func paged(c *fiber.Ctx, data any, total int64, p utils.Page) error {
	return c.JSON(dto.Paged(data, dto.Pagination{
		Total:      total,
		Page:       p.Number,
		Limit:      p.Limit,
		TotalPages: utils.TotalPages(total, p.Limit),
	}))
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}
