package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/services"
)

func conflict(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fiber.NewError(fiber.StatusConflict, "technician id already exists")
	}
	return err
}

// ListTechniciansHandler godoc
// @Summary List technicians
// @Tags technicians
// @Produce json
// @Success 200 {object} dto.Response{data=[]models.Technician}
// @Router /technicians [get]
func ListTechniciansHandler(repo repository.TechnicianRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()

		techs, err := repo.List(ctx)
		if err != nil {
			return err
		}
		return c.JSON(dto.OK(techs))
	}
}

// CreateTechnicianHandler godoc
// @Summary Register a technician
// @Tags technicians
// @Accept json
// @Produce json
// @Param body body dto.TechnicianCreateRequest true "Technician"
// @Success 201 {object} dto.Response{data=models.Technician}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /technicians [post]
func CreateTechnicianHandler(repo repository.TechnicianRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.TechnicianCreateRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}
		hash, err := services.HashPassword(body.Password)
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		tech := models.Technician{
			Name:        body.Name.String(),
			PhoneNumber: body.PhoneNumber.String(),
			Team:        body.Team.String(),
			LoginID:     body.LoginID.String(),
			Password:    hash,
		}
		if err := repo.Insert(ctx, &tech); err != nil {
			return conflict(err)
		}
		return created(c, tech)
	}
}

// UpdateTechnicianHandler godoc
// @Summary Update a technician
// @Description An empty password keeps the current one.
// @Tags technicians
// @Accept json
// @Produce json
// @Param body body dto.TechnicianUpdateRequest true "Technician"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /technicians [put]
func UpdateTechnicianHandler(repo repository.TechnicianRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.TechnicianUpdateRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}
		id, err := targetID(c, body.ID)
		if err != nil {
			return err
		}

		tech := models.Technician{
			Name:        body.Name.String(),
			PhoneNumber: body.PhoneNumber.String(),
			Team:        body.Team.String(),
			LoginID:     body.LoginID.String(),
		}
		if body.Password != "" {
			if tech.Password, err = services.HashPassword(body.Password); err != nil {
				return err
			}
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Replace(ctx, id, tech); err != nil {
			return conflict(notFound(err, "technician not found"))
		}
		return c.JSON(dto.Message("technician updated"))
	}
}

// DeleteTechnicianHandler godoc
// @Summary Delete a technician
// @Tags technicians
// @Produce json
// @Param id query string true "Technician document id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /technicians [delete]
func DeleteTechnicianHandler(repo repository.TechnicianRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Query("id"))
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Delete(ctx, id); err != nil {
			return notFound(err, "technician not found")
		}
		return c.JSON(dto.Message("technician deleted"))
	}
}
