package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/repository"
)

// ListVendorsHandler godoc
// @Summary List maintenance vendors
// @Tags maintenance
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.Response{data=[]models.Vendor}
// @Router /maintenance [get]
func ListVendorsHandler(repo repository.VendorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()

		p := page(c)
		vendors, total, err := repo.List(ctx, p)
		if err != nil {
			return err
		}
		return paged(c, vendors, total, p)
	}
}

// CreateVendorHandler godoc
// @Summary Add a maintenance vendor
// @Tags maintenance
// @Accept json
// @Produce json
// @Param body body dto.VendorRequest true "Vendor"
// @Success 201 {object} dto.Response{data=models.Vendor}
// @Failure 400 {object} dto.Response
// @Router /maintenance [post]
func CreateVendorHandler(repo repository.VendorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.VendorRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		vendor := body.ToModel()
		if err := repo.Insert(ctx, &vendor); err != nil {
			return err
		}
		return created(c, vendor)
	}
}

// UpdateVendorHandler godoc
// @Summary Update a maintenance vendor
// @Tags maintenance
// @Accept json
// @Produce json
// @Param body body dto.VendorRequest true "Vendor with _id"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /maintenance [put]
func UpdateVendorHandler(repo repository.VendorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.VendorRequest
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
			return notFound(err, "vendor not found")
		}
		return c.JSON(dto.Message("vendor updated"))
	}
}

// DeleteVendorHandler godoc
// @Summary Delete a maintenance vendor
// @Tags maintenance
// @Produce json
// @Param id query string true "Vendor id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /maintenance [delete]
func DeleteVendorHandler(repo repository.VendorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Query("id"))
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Delete(ctx, id); err != nil {
			return notFound(err, "vendor not found")
		}
		return c.JSON(dto.Message("vendor deleted"))
	}
}
