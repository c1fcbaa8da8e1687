package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/services"
)

// StatsHandler godoc
// @Summary Dashboard counters
// @Tags stats
// @Produce json
// @Success 200 {object} dto.Response{data=dto.Stats}
// @Router /stats [get]
func StatsHandler(schools repository.SchoolRepository, techs repository.TechnicianRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()

		stats, err := services.CollectStats(ctx, schools, techs)
		if err != nil {
			return err
		}
		return c.JSON(dto.OK(stats))
	}
}
