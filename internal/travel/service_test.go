package travel

import (
	"errors"
	"log/slog"
	"testing"

	"explore-places/internal/places"
	"explore-places/internal/providers/googlemaps"
	"explore-places/internal/types"
)

type mockPlaces struct {
	coords     map[string]types.Coords
	station    *types.Place
	airport    *types.Place
	airportKm  float64
	candidates []types.Place
}

func (m *mockPlaces) Resolve(place string) (types.Coords, error) {
	if c, ok := m.coords[place]; ok {
		return c, nil
	}
	return types.Coords{}, places.ErrPlaceNotFound
}

func (m *mockPlaces) NearestStation(center types.Coords) (*types.Place, error) {
	return m.station, nil
}

func (m *mockPlaces) NearestAirport(center types.Coords) (*types.Place, float64, error) {
	return m.airport, m.airportKm, nil
}

func (m *mockPlaces) FindNearby(center types.Coords, category places.Category) ([]types.Place, error) {
	return m.candidates, nil
}

func (m *mockPlaces) CandidateLines(place string, category places.Category) ([]string, error) {
	return nil, nil
}

type mockDirections struct {
	resp  *googlemaps.DirectionsAPIResponse
	err   error
	calls int
}

func (m *mockDirections) GetDirections(origin, destination string) (*googlemaps.DirectionsAPIResponse, error) {
	m.calls++
	return m.resp, m.err
}

func routedResponse(duration, distance string) *googlemaps.DirectionsAPIResponse {
	return &googlemaps.DirectionsAPIResponse{
		Status: "OK",
		Routes: []googlemaps.Route{{
			Legs: []googlemaps.RouteLeg{{
				Duration: googlemaps.TextValue{Text: duration},
				Distance: googlemaps.TextValue{Text: distance},
			}},
		}},
	}
}

func TestPlan(t *testing.T) {
	logger := slog.Default()
	resolved := map[string]types.Coords{
		"Chikmagalur": types.NewCoords(13.3161, 75.7720),
		"Bengaluru":   types.NewCoords(12.9716, 77.5946),
	}

	t.Run("unresolvable origin never calls directions", func(t *testing.T) {
		directions := &mockDirections{resp: routedResponse("5 hours", "250 km")}
		svc := NewTravelServiceWithProviders(&mockPlaces{coords: resolved}, directions, logger)

		_, err := svc.Plan("Chikmagalur", "qqqqqqq")
		if !errors.Is(err, ErrOriginNotFound) {
			t.Fatalf("Plan() error = %v, want ErrOriginNotFound", err)
		}
		if directions.calls != 0 {
			t.Errorf("directions provider called %d times, want 0", directions.calls)
		}
	})

	t.Run("unresolvable place never calls directions", func(t *testing.T) {
		directions := &mockDirections{resp: routedResponse("5 hours", "250 km")}
		svc := NewTravelServiceWithProviders(&mockPlaces{coords: resolved}, directions, logger)

		_, err := svc.Plan("qqqqqqq", "Bengaluru")
		if !errors.Is(err, places.ErrPlaceNotFound) {
			t.Fatalf("Plan() error = %v, want ErrPlaceNotFound", err)
		}
		if directions.calls != 0 {
			t.Errorf("directions provider called %d times, want 0", directions.calls)
		}
	})

	t.Run("zero routes is a distinct warning", func(t *testing.T) {
		directions := &mockDirections{resp: &googlemaps.DirectionsAPIResponse{Status: "ZERO_RESULTS"}}
		svc := NewTravelServiceWithProviders(&mockPlaces{coords: resolved}, directions, logger)

		_, err := svc.Plan("Chikmagalur", "Bengaluru")
		if !errors.Is(err, ErrNoRoute) {
			t.Fatalf("Plan() error = %v, want ErrNoRoute", err)
		}
		if errors.Is(err, ErrOriginNotFound) || errors.Is(err, places.ErrPlaceNotFound) {
			t.Error("ErrNoRoute must not match the resolution failures")
		}
	})

	t.Run("composes air, rail and road legs", func(t *testing.T) {
		station := &types.Place{
			Name:        "Chikmagalur Railway Station",
			Coordinates: types.NewCoords(13.3100, 75.7800),
		}
		airport := &types.Place{
			Name:        "Mangaluru International Airport",
			Vicinity:    "Mangaluru",
			Coordinates: types.NewCoords(12.9613, 74.8900),
		}
		mock := &mockPlaces{coords: resolved, station: station, airport: airport, airportKm: 113.2}
		directions := &mockDirections{resp: routedResponse("5 hours 10 mins", "245 km")}
		svc := NewTravelServiceWithProviders(mock, directions, logger)

		plan, err := svc.Plan("Chikmagalur", "Bengaluru")
		if err != nil {
			t.Fatalf("Plan() unexpected error: %v", err)
		}

		if plan.Air != "Mangaluru International Airport (Mangaluru) - 📏 113.2 km from city center" {
			t.Errorf("Air = %q", plan.Air)
		}
		if plan.Rail == "Not Found" {
			t.Errorf("Rail = %q, want station line", plan.Rail)
		}
		if plan.Helipad != "Check local/state helipad info." {
			t.Errorf("Helipad = %q", plan.Helipad)
		}
		if plan.Road.DurationText != "5 hours 10 mins" || plan.Road.DistanceText != "245 km" {
			t.Errorf("Road = %+v", plan.Road)
		}
		if plan.Road.MapLink != "https://www.google.com/maps/dir/Bengaluru/Chikmagalur" {
			t.Errorf("MapLink = %q", plan.Road.MapLink)
		}
	})

	t.Run("missing station and airport render as not found", func(t *testing.T) {
		mock := &mockPlaces{coords: resolved}
		directions := &mockDirections{resp: routedResponse("5 hours", "250 km")}
		svc := NewTravelServiceWithProviders(mock, directions, logger)

		plan, err := svc.Plan("Chikmagalur", "Bengaluru")
		if err != nil {
			t.Fatalf("Plan() unexpected error: %v", err)
		}
		if plan.Air != "Not Found" || plan.Rail != "Not Found" {
			t.Errorf("Air = %q, Rail = %q, want Not Found for both", plan.Air, plan.Rail)
		}
	})
}

func TestBuildMapLink(t *testing.T) {
	tests := []struct {
		origin      string
		destination string
		expected    string
	}{
		{"New York", "Paris", "https://www.google.com/maps/dir/New+York/Paris"},
		{"Bengaluru", "Chikmagalur", "https://www.google.com/maps/dir/Bengaluru/Chikmagalur"},
		{"San Jose del Cabo", "La Paz", "https://www.google.com/maps/dir/San+Jose+del+Cabo/La+Paz"},
	}

	for _, tt := range tests {
		t.Run(tt.origin+" to "+tt.destination, func(t *testing.T) {
			if got := BuildMapLink(tt.origin, tt.destination); got != tt.expected {
				t.Errorf("BuildMapLink(%q, %q) = %q, want %q", tt.origin, tt.destination, got, tt.expected)
			}
		})
	}
}
