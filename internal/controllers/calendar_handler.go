package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/repository"
)

// ListEventsHandler godoc
// @Summary List calendar events
// @Tags calendar
// @Produce json
// @Success 200 {object} dto.Response{data=[]models.Event}
// @Router /calendar [get]
func ListEventsHandler(repo repository.EventRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()

		events, err := repo.List(ctx)
		if err != nil {
			return err
		}
		return c.JSON(dto.OK(events))
	}
}

// CreateEventHandler godoc
// @Summary Add a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param body body dto.EventRequest true "Event"
// @Success 201 {object} dto.Response{data=models.Event}
// @Failure 400 {object} dto.Response
// @Router /calendar [post]
func CreateEventHandler(repo repository.EventRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		event := body.ToModel()
		if err := repo.Insert(ctx, &event); err != nil {
			return err
		}
		return created(c, event)
	}
}

// UpdateEventHandler godoc
// @Summary Update a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param body body dto.EventRequest true "Event with _id"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /calendar [put]
func UpdateEventHandler(repo repository.EventRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}
		id, err := targetID(c, body.ID)
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Replace(ctx, id, body.ToModel()); err != nil {
			return notFound(err, "event not found")
		}
		return c.JSON(dto.Message("event updated"))
	}
}

// DeleteEventHandler godoc
// @Summary Delete a calendar event
// @Tags calendar
// @Produce json
// @Param id query string true "Event id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /calendar [delete]
func DeleteEventHandler(repo repository.EventRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Query("id"))
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Delete(ctx, id); err != nil {
			return notFound(err, "event not found")
		}
		return c.JSON(dto.Message("event deleted"))
	}
}
