package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Explore endpoints
	app.router.GET("/explore/overview", app.handleOverview)
	app.router.GET("/explore/attractions", app.handleAttractions)
	app.router.GET("/explore/eateries", app.handleEateries)
	app.router.GET("/explore/hotels", app.handleHotels)
	app.router.GET("/explore/travel", app.handleTravel)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
