package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/internal/controllers"
	"github.com/jeongjingoo/tech/internal/repository"
)

func SetupTechnicians(router fiber.Router, repo repository.TechnicianRepository) {
	techs := router.Group("/technicians")
	techs.Get("/", controllers.ListTechniciansHandler(repo))
	techs.Post("/", controllers.CreateTechnicianHandler(repo))
	techs.Put("/", controllers.UpdateTechnicianHandler(repo))
	techs.Delete("/", controllers.DeleteTechnicianHandler(repo))
}
