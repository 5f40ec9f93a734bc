package places

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"explore-places/internal/config"
	"explore-places/internal/geo"
	"explore-places/internal/providers/googlemaps"
	"explore-places/internal/types"
)

// ErrPlaceNotFound means the place name could not be geocoded. Views that
// depend on coordinates halt on it; there is no retry.
var ErrPlaceNotFound = errors.New("place could not be resolved")

type GeocodeProvider interface {
	Geocode(address string) (*googlemaps.GeocodeAPIResponse, error)
}

type NearbySearchProvider interface {
	NearbySearchByType(lat, lng float64, radiusMeters int, placeType string) (*googlemaps.NearbySearchAPIResponse, error)
	NearbySearchByKeyword(lat, lng float64, radiusMeters int, keyword string) (*googlemaps.NearbySearchAPIResponse, error)
}

type Service interface {
	// Resolve geocodes a free-text place name, taking the first result.
	Resolve(place string) (types.Coords, error)
	// NearestStation returns the first railway station around the center,
	// or nil when the search comes back empty.
	NearestStation(center types.Coords) (*types.Place, error)
	// NearestAirport returns the closest airport to the center and its
	// distance in km, widening from "international airport" to "airport"
	// when the first search has no results. Nil when both come back empty.
	NearestAirport(center types.Coords) (*types.Place, float64, error)
	// FindNearby returns all candidates of a category around the center.
	// An empty result is an empty slice, never an error.
	FindNearby(center types.Coords, category Category) ([]types.Place, error)
	// CandidateLines resolves the place and its nearest station, then
	// formats every nearby candidate of the category with its distance
	// from the station.
	CandidateLines(place string, category Category) ([]string, error)
}

type placesService struct {
	geocoder GeocodeProvider
	searcher NearbySearchProvider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewPlacesService creates a places service with a real Google Maps client.
func NewPlacesService(cfg *config.Config, logger *slog.Logger) Service {
	client := googlemaps.NewClient(cfg.Keys.Google, logger)
	return NewPlacesServiceWithProviders(client, client, cfg, logger)
}

// NewPlacesServiceWithProviders creates a places service with custom
// providers. This is useful for testing with mock providers.
func NewPlacesServiceWithProviders(
	geocoder GeocodeProvider,
	searcher NearbySearchProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &placesService{
		geocoder: geocoder,
		searcher: searcher,
		cfg:      cfg,
		logger:   logger.With("component", "places-service"),
	}
}

func (s *placesService) Resolve(place string) (types.Coords, error) {
	resp, err := s.geocoder.Geocode(place)
	if err != nil {
		s.logger.Warn("geocoding failed", "place", place, "error", err)
		return types.Coords{}, ErrPlaceNotFound
	}
	if len(resp.Results) == 0 {
		return types.Coords{}, ErrPlaceNotFound
	}

	loc := resp.Results[0].Geometry.Location
	return types.NewCoords(loc.Lat, loc.Lng), nil
}

func (s *placesService) NearestStation(center types.Coords) (*types.Place, error) {
	resp, err := s.searcher.NearbySearchByKeyword(
		center.Latitude, center.Longitude, s.cfg.App.StationRadiusMeters, keywordRailwayStation)
	if err != nil {
		return nil, fmt.Errorf("failed to search railway stations: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	station := toPlace(resp.Results[0])
	return &station, nil
}

func (s *placesService) NearestAirport(center types.Coords) (*types.Place, float64, error) {
	resp, err := s.searcher.NearbySearchByKeyword(
		center.Latitude, center.Longitude, s.cfg.App.AirportRadiusMeters, keywordInternationalAirport)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search airports: %w", err)
	}

	// Fallback widening: one retry with the generic keyword
	if len(resp.Results) == 0 {
		s.logger.Debug("no international airport found, widening to generic keyword")
		resp, err = s.searcher.NearbySearchByKeyword(
			center.Latitude, center.Longitude, s.cfg.App.AirportRadiusMeters, keywordAirport)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to search airports: %w", err)
		}
	}
	if len(resp.Results) == 0 {
		return nil, 0, nil
	}

	// Distance is measured from the place's own resolved center
	var nearest *types.Place
	minDist := 0.0
	for _, result := range resp.Results {
		candidate := toPlace(result)
		dist := geo.DistanceKm(center, candidate.Coordinates)
		if nearest == nil || dist < minDist {
			p := candidate
			nearest = &p
			minDist = dist
		}
	}
	return nearest, minDist, nil
}

func (s *placesService) FindNearby(center types.Coords, category Category) ([]types.Place, error) {
	resp, err := s.searcher.NearbySearchByType(
		center.Latitude, center.Longitude, s.cfg.App.PoiRadiusMeters, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", category, err)
	}

	candidates := make([]types.Place, 0, len(resp.Results))
	for _, result := range resp.Results {
		candidates = append(candidates, toPlace(result))
	}
	return candidates, nil
}

func (s *placesService) CandidateLines(place string, category Category) ([]string, error) {
	center, err := s.Resolve(place)
	if err != nil {
		return nil, err
	}

	station, err := s.NearestStation(center)
	if err != nil {
		return nil, err
	}
	if station == nil {
		// No station within radius means no reference point for distances
		s.logger.Info("no railway station found near place", "place", place)
		return []string{}, nil
	}

	candidates, err := s.FindNearby(center, category)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		dist := geo.DistanceKm(station.Coordinates, candidate.Coordinates)
		lines = append(lines, formatCandidateLine(candidate, dist))
	}
	return lines, nil
}

// formatCandidateLine renders one candidate for display, distance rounded to
// one decimal place.
func formatCandidateLine(p types.Place, distanceKm float64) string {
	rating := "N/A"
	if p.Rating != nil {
		rating = strconv.FormatFloat(*p.Rating, 'f', -1, 64)
	}
	return fmt.Sprintf("%s (%s) - ⭐ %s - 📏 %.1f km from station", p.Name, p.Vicinity, rating, distanceKm)
}

func toPlace(result googlemaps.NearbyResult) types.Place {
	return types.Place{
		Name:        result.Name,
		Vicinity:    result.Vicinity,
		Rating:      result.Rating,
		Coordinates: types.NewCoords(result.Geometry.Location.Lat, result.Geometry.Location.Lng),
	}
}
