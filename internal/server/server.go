package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	_ "github.com/jeongjingoo/tech/docs"

	"github.com/jeongjingoo/tech/config"
	"github.com/jeongjingoo/tech/internal/controllers"
	"github.com/jeongjingoo/tech/internal/middleware"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/routes"
	"github.com/jeongjingoo/tech/internal/services"
	"github.com/jeongjingoo/tech/internal/web"
)

type Options struct {
	Config config.Config
	Logger *logrus.Logger
	Stores repository.Stores
}

// New builds the full application: API under /api, pages at /.
func New(opts Options) *fiber.App {
	cfg := opts.Config
	log := opts.Logger

	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}

	app := fiber.New(fiber.Config{
		AppName:      "techcenter",
		Views:        web.Engine(),
		ErrorHandler: middleware.ErrorHandler(log),
		BodyLimit:    bodyLimit * 1024 * 1024,
		ReadTimeout:  30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestIDs())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	auth := services.NewAuthService(opts.Stores.Technicians, cfg.JWTSecret, cfg.JWTTTL, log)
	api := app.Group("/api", middleware.JWTOptional(auth))
	routes.Register(api, routes.Deps{
		Stores:   opts.Stores,
		Auth:     auth,
		Importer: services.NewImporter(opts.Stores.Schools, log),
		Timeouts: controllers.Timeouts{Store: cfg.DBTimeout, Import: cfg.ImportTimeout},
	})

	web.Register(app, web.Options{KakaoAppKey: cfg.KakaoAppKey})
	return app
}
