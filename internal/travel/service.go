package travel

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"explore-places/internal/config"
	"explore-places/internal/geo"
	"explore-places/internal/places"
	"explore-places/internal/providers/googlemaps"
	"explore-places/internal/types"
)

var (
	// ErrOriginNotFound means the starting location could not be geocoded.
	// The directions provider is never called in that case.
	ErrOriginNotFound = errors.New("origin could not be resolved")
	// ErrNoRoute means the directions provider returned zero routes. It is
	// a warning outcome, kept distinct from resolution failures.
	ErrNoRoute = errors.New("no route between origin and destination")
)

// NoRouteWarning is the display text for ErrNoRoute.
const NoRouteWarning = "Couldn't fetch travel time from Google Maps."

// HardErrorMessage is the display text when origin or place resolution fails.
const HardErrorMessage = "Could not fetch travel data."

const mapLinkBase = "https://www.google.com/maps/dir/"

// Plan is the composite how-to-reach view.
type Plan struct {
	Air     string          `json:"air"`
	Rail    string          `json:"rail"`
	Helipad string          `json:"helipad"`
	Road    types.TravelLeg `json:"road"`
}

type DirectionsProvider interface {
	GetDirections(origin, destination string) (*googlemaps.DirectionsAPIResponse, error)
}

type Service interface {
	// Plan resolves the origin and place, finds the rail and air options
	// around the place, and fetches driving directions from the origin.
	Plan(place, origin string) (*Plan, error)
}

type travelService struct {
	places     places.Service
	directions DirectionsProvider
	logger     *slog.Logger
}

// NewTravelService creates a travel service with real Google Maps clients.
func NewTravelService(cfg *config.Config, logger *slog.Logger) Service {
	client := googlemaps.NewClient(cfg.Keys.Google, logger)
	return NewTravelServiceWithProviders(places.NewPlacesService(cfg, logger), client, logger)
}

// NewTravelServiceWithProviders creates a travel service with custom
// providers. This is useful for testing with mock providers.
func NewTravelServiceWithProviders(
	placesService places.Service,
	directions DirectionsProvider,
	logger *slog.Logger,
) Service {
	return &travelService{
		places:     placesService,
		directions: directions,
		logger:     logger.With("component", "travel-service"),
	}
}

func (s *travelService) Plan(place, origin string) (*Plan, error) {
	// The origin gate comes first: an unresolvable origin must never reach
	// the directions provider
	if _, err := s.places.Resolve(origin); err != nil {
		s.logger.Warn("origin resolution failed", "origin", origin, "error", err)
		return nil, ErrOriginNotFound
	}

	center, err := s.places.Resolve(place)
	if err != nil {
		return nil, err
	}

	station, err := s.places.NearestStation(center)
	if err != nil {
		return nil, err
	}

	airport, airportDist, err := s.places.NearestAirport(center)
	if err != nil {
		return nil, err
	}

	resp, err := s.directions.GetDirections(origin, place)
	if err != nil {
		s.logger.Warn("directions fetch failed", "origin", origin, "place", place, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNoRoute, err)
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	leg := resp.Routes[0].Legs[0]
	return &Plan{
		Air:     airLine(airport, airportDist),
		Rail:    railLine(station, center),
		Helipad: "Check local/state helipad info.",
		Road: types.TravelLeg{
			DurationText: leg.Duration.Text,
			DistanceText: leg.Distance.Text,
			MapLink:      BuildMapLink(origin, place),
		},
	}, nil
}

// BuildMapLink renders the fixed directions URL template, substituting
// spaces with "+" in both segments.
func BuildMapLink(origin, destination string) string {
	return mapLinkBase + strings.ReplaceAll(origin, " ", "+") + "/" + strings.ReplaceAll(destination, " ", "+")
}

// airLine formats the air leg. Airport distance is measured from the
// place's own resolved center.
func airLine(airport *types.Place, distanceKm float64) string {
	if airport == nil {
		return "Not Found"
	}
	return fmt.Sprintf("%s (%s) - 📏 %.1f km from city center", airport.Name, airport.Vicinity, distanceKm)
}

func railLine(station *types.Place, center types.Coords) string {
	if station == nil {
		return "Not Found"
	}
	return fmt.Sprintf("%s - 📏 %.1f km from city center", station.Name, geo.DistanceKm(center, station.Coordinates))
}
