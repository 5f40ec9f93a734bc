package explore

import (
	"fmt"
	"log/slog"

	"explore-places/internal/config"
	"explore-places/internal/places"
	"explore-places/internal/summary"
	"explore-places/internal/timezone"
	"explore-places/internal/travel"
	"explore-places/internal/weather"
)

// SummaryFallback is shown when the summary lookup fails for any reason.
// The causes stay distinguishable inside the summary service; they collapse
// to this single string only here, at the presentation boundary.
const SummaryFallback = "No Wikipedia summary available."

const localTimeLayout = "Monday, 02 Jan 2006 15:04"

type Service interface {
	Overview(place string) (*OverviewView, error)
	Candidates(place string, category places.Category) (*ListView, error)
	Travel(place, origin string) (*TravelView, error)
}

type exploreService struct {
	weather  weather.Service
	summary  summary.Service
	places   places.Service
	travel   travel.Service
	timezone timezone.Service
	logger   *slog.Logger
}

// NewExploreService creates the aggregator with real provider-backed services.
func NewExploreService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewExploreServiceWithServices(
		weather.NewWeatherService(cfg, logger),
		summary.NewSummaryService(cfg, logger),
		places.NewPlacesService(cfg, logger),
		travel.NewTravelService(cfg, logger),
		tzSvc,
		logger,
	), nil
}

// NewExploreServiceWithServices creates the aggregator with custom services.
// This is useful for testing with mocks.
func NewExploreServiceWithServices(
	weatherService weather.Service,
	summaryService summary.Service,
	placesService places.Service,
	travelService travel.Service,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &exploreService{
		weather:  weatherService,
		summary:  summaryService,
		places:   placesService,
		travel:   travelService,
		timezone: timezoneService,
		logger:   logger.With("component", "explore-service"),
	}
}

func (s *exploreService) Overview(place string) (*OverviewView, error) {
	view := &OverviewView{
		Place:          place,
		Weather:        s.weather.ConditionsLine(place),
		Recommendation: Recommendation(place),
	}

	result, err := s.summary.Summarize(place)
	if err != nil {
		s.logger.Info("summary unavailable", "place", place, "error", err)
		view.Summary = SummaryFallback
	} else {
		view.Summary = result.Text
		view.ReferenceURL = result.ReferenceURL
	}

	// Local time is best effort; the overview renders without it
	if center, err := s.places.Resolve(place); err == nil {
		if local, err := s.timezone.LocalTime(center.Latitude, center.Longitude); err == nil {
			view.LocalTime = local.Format(localTimeLayout)
		} else {
			s.logger.Debug("local time unavailable", "place", place, "error", err)
		}
	}

	return view, nil
}

func (s *exploreService) Candidates(place string, category places.Category) (*ListView, error) {
	items, err := s.places.CandidateLines(place, category)
	if err != nil {
		return nil, err
	}

	return &ListView{
		Place:   place,
		Weather: s.weather.ConditionsLine(place),
		Items:   items,
	}, nil
}

func (s *exploreService) Travel(place, origin string) (*TravelView, error) {
	plan, err := s.travel.Plan(place, origin)
	if err != nil {
		return nil, err
	}

	return &TravelView{
		Place:   place,
		Origin:  origin,
		Weather: s.weather.ConditionsLine(place),
		Plan:    plan,
	}, nil
}

// Recommendation renders the fixed recommendation template for a place.
func Recommendation(place string) string {
	return fmt.Sprintf("🌟 %s offers a unique travel experience. Ideal for a short trip or weekend getaway!", place)
}
