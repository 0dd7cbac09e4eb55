package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Saas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Saas-api/pkg/logger"
)

// AppConfig opciones del servidor fiber.
type AppConfig struct {
	Name        string
	SwaggerFile string // si no existe el archivo no se monta /docs
	Log         *logger.Logger
	Metrics     *metrics.Metrics
}

// NewApp construye la aplicación con recover, request id, log de peticiones y el manejo de errores central.
func NewApp(cfg AppConfig) *fiber.App {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: NewErrorHandler(log, cfg.Metrics),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log, cfg.Metrics))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    cfg.Name + " API",
			}))
		} else {
			log.Warn().Str("file", cfg.SwaggerFile).Msg("swagger no disponible")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	return app
}
