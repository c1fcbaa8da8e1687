package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/internal/controllers"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/services"
)

// Deps is what the API handlers are built from.
type Deps struct {
	Stores   repository.Stores
	Auth     *services.AuthService
	Importer *services.Importer
	Timeouts controllers.Timeouts
}

// Register mounts every API resource on router.
func Register(router fiber.Router, d Deps) {
	router.Use(controllers.WithTimeouts(d.Timeouts))
	SetupAuth(router, d.Auth)
	SetupSchools(router, d.Stores.Schools, d.Importer)
	SetupStats(router, d.Stores)
	SetupTechnicians(router, d.Stores.Technicians)
	SetupMaintenance(router, d.Stores.Vendors)
	SetupQna(router, d.Stores.Posts)
	SetupCalendar(router, d.Stores.Events)
}
