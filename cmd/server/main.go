package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fashion-dashboard/internal/api"
	"fashion-dashboard/internal/config"
)

func main() {
	// 1. Config (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// 2. Echo with the usual middleware
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB)))
	e.Validator = api.NewValidator()

	// 3. Handlers start with no catalogs; analysts upload per session
	h := api.NewHandler(cfg, logger)
	h.RegisterRoutes(e)

	log.Printf("Server ready on port %d", cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
