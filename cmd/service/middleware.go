package main

import (
	"log/slog"

	"github.com/tutormesh/tutormesh/internal/config"
	"github.com/tutormesh/tutormesh/internal/middleware"
)

func buildMiddleware(cfg *config.Config, logger *slog.Logger) middleware.System {
	sys := middleware.New()

	sys.Use(middleware.Logger(logger))
	sys.Use(middleware.CORS(&cfg.CORS))
	sys.Use(middleware.TrimSlash())
	sys.Use(middleware.BodyLimit(cfg.Server.MaxRequestBytes()))

	return sys
}
