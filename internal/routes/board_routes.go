package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/internal/controllers"
	"github.com/jeongjingoo/tech/internal/repository"
)

func SetupMaintenance(router fiber.Router, repo repository.VendorRepository) {
	m := router.Group("/maintenance")
	m.Get("/", controllers.ListVendorsHandler(repo))
	m.Post("/", controllers.CreateVendorHandler(repo))
	m.Put("/", controllers.UpdateVendorHandler(repo))
	m.Delete("/", controllers.DeleteVendorHandler(repo))
}

func SetupQna(router fiber.Router, repo repository.PostRepository) {
	qna := router.Group("/qna")
	qna.Get("/", controllers.ListPostsHandler(repo))
	qna.Post("/", controllers.CreatePostHandler(repo))
	qna.Put("/", controllers.UpdatePostHandler(repo))
	qna.Delete("/", controllers.DeletePostHandler(repo))

	qna.Post("/replies", controllers.AddReplyHandler(repo))
	qna.Put("/views", controllers.IncrementViewsHandler(repo))
}

func SetupCalendar(router fiber.Router, repo repository.EventRepository) {
	cal := router.Group("/calendar")
	cal.Get("/", controllers.ListEventsHandler(repo))
	cal.Post("/", controllers.CreateEventHandler(repo))
	cal.Put("/", controllers.UpdateEventHandler(repo))
	cal.Delete("/", controllers.DeleteEventHandler(repo))
}
