package main

import (
	"log/slog"

	"explore-places/internal/config"
	"explore-places/internal/explore"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	exploreService explore.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestID())

	// Initialize the aggregator and everything beneath it
	exploreSvc, err := explore.NewExploreService(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:         router,
		logger:         logger,
		exploreService: exploreSvc,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
