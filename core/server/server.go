package server

import (
	"errors"
	"time"

	"movie-manager/core/logger"
	"movie-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New creates the Fiber application with ray ids and request logging installed.
func New(cfg Config, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		BodyLimit:             cfg.BodyLimit(),
		ErrorHandler:          errorHandler,
	})

	// RayID must run first so every log line below carries it.
	app.Use(rayid.New())
	app.Use(requestLogger(logg))
	return app
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)

		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Debug("Request finished",
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return err
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
