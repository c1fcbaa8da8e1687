package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/internal/controllers"
	"github.com/jeongjingoo/tech/internal/services"
)

func SetupAuth(router fiber.Router, auth *services.AuthService) {
	h := controllers.NewAuthHandler(auth)

	authGroup := router.Group("/auth")
	authGroup.Post("/login", h.Login)
	// curl -X POST http://127.0.0.1:3000/api/auth/login \
	// -H "Content-Type: application/json" \
	// -d '{"id": "kim", "password": "secret"}'
	authGroup.Get("/me", h.Me)
}
