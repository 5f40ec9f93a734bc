package main

import (
	"errors"
	"net/http"

	"explore-places/internal/places"
	"explore-places/internal/travel"

	"github.com/gin-gonic/gin"
)

// PlaceInput defines the query parameters shared by the place views
type PlaceInput struct {
	Place string `form:"place" binding:"required"` // Free-text place name
}

// TravelInput defines the query parameters for the how-to-reach view
type TravelInput struct {
	Place  string `form:"place" binding:"required"`  // Free-text destination place name
	Origin string `form:"origin" binding:"required"` // Free-text starting location
}

// handleOverview godoc
// @Summary Get place overview
// @Description Current weather, encyclopedic summary, recommendation and local time for a place
// @Tags explore
// @Produce json
// @Param place query string true "Place name" example(Paris)
// @Success 200 {object} explore.OverviewView
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /explore/overview [get]
func (app *App) handleOverview(c *gin.Context) {
	var input PlaceInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := app.exploreService.Overview(input.Place)
	if err != nil {
		app.logger.Error("failed to build overview",
			"place", input.Place,
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build overview"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// handleAttractions godoc
// @Summary List tourist attractions around a place
// @Description Attractions within 50 km with distance from the nearest railway station
// @Tags explore
// @Produce json
// @Param place query string true "Place name" example(Chikmagalur)
// @Success 200 {object} explore.ListView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /explore/attractions [get]
func (app *App) handleAttractions(c *gin.Context) {
	app.handleCandidates(c, places.CategoryAttractions)
}

// handleEateries godoc
// @Summary List famous eateries around a place
// @Description Restaurants within 50 km with distance from the nearest railway station
// @Tags explore
// @Produce json
// @Param place query string true "Place name" example(Chikmagalur)
// @Success 200 {object} explore.ListView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /explore/eateries [get]
func (app *App) handleEateries(c *gin.Context) {
	app.handleCandidates(c, places.CategoryEateries)
}

// handleHotels godoc
// @Summary List hotels to stay around a place
// @Description Lodging within 50 km with distance from the nearest railway station
// @Tags explore
// @Produce json
// @Param place query string true "Place name" example(Chikmagalur)
// @Success 200 {object} explore.ListView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /explore/hotels [get]
func (app *App) handleHotels(c *gin.Context) {
	app.handleCandidates(c, places.CategoryHotels)
}

func (app *App) handleCandidates(c *gin.Context, category places.Category) {
	var input PlaceInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := app.exploreService.Candidates(input.Place, category)
	if err != nil {
		if errors.Is(err, places.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Could not resolve place: " + input.Place})
			return
		}

		app.logger.Error("failed to list candidates",
			"place", input.Place,
			"category", string(category),
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list places"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// handleTravel godoc
// @Summary Get how-to-reach travel information
// @Description Air, rail and road options from an origin to a place, with driving duration and a map link
// @Tags explore
// @Produce json
// @Param place query string true "Destination place name" example(Chikmagalur)
// @Param origin query string true "Starting location" example(Bengaluru)
// @Success 200 {object} explore.TravelView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /explore/travel [get]
func (app *App) handleTravel(c *gin.Context) {
	var input TravelInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := app.exploreService.Travel(input.Place, input.Origin)
	if err != nil {
		switch {
		case errors.Is(err, travel.ErrOriginNotFound), errors.Is(err, places.ErrPlaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": travel.HardErrorMessage})
		case errors.Is(err, travel.ErrNoRoute):
			// A routeless answer is a warning, not a failure
			c.JSON(http.StatusOK, gin.H{"warning": travel.NoRouteWarning})
		default:
			app.logger.Error("failed to build travel plan",
				"place", input.Place,
				"origin", input.Origin,
				"request_id", c.GetString(requestIDKey),
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build travel plan"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
