package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/internal/controllers"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/services"
)

func SetupSchools(router fiber.Router, repo repository.SchoolRepository, importer *services.Importer) {
	schools := router.Group("/schools")
	schools.Get("/", controllers.ListSchoolsHandler(repo))
	schools.Post("/", controllers.CreateSchoolHandler(repo))
	schools.Put("/", controllers.UpdateSchoolHandler(repo))
	schools.Delete("/", controllers.DeleteSchoolHandler(repo))

	schools.Get("/all", controllers.AllSchoolsHandler(repo))
	schools.Put("/update", controllers.UpdateSchoolStatusHandler(repo))
	schools.Post("/upload", controllers.UploadSchoolsHandler(importer))

	router.Post("/upload-excel", controllers.UploadExcelRowsHandler(importer))
}

func SetupStats(router fiber.Router, stores repository.Stores) {
	router.Get("/stats", controllers.StatsHandler(stores.Schools, stores.Technicians))
}
