package weather

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"explore-places/internal/config"
	"explore-places/internal/providers/openweather"
)

// FallbackLine is shown whenever the provider call fails, regardless of cause.
const FallbackLine = "⚠️ Couldn't fetch weather."

type CurrentWeatherProvider interface {
	GetCurrentWeather(location string) (*openweather.CurrentWeatherAPIResponse, error)
}

type Service interface {
	// Current returns the typed reading for a place.
	Current(place string) (*Reading, error)
	// ConditionsLine returns the display line for a place, collapsing any
	// provider failure into FallbackLine.
	ConditionsLine(place string) string
}

type weatherService struct {
	provider CurrentWeatherProvider
	logger   *slog.Logger
}

// NewWeatherService creates a weather service with a real OpenWeatherMap client.
func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(openweather.NewClient(cfg.Keys.Weather, logger), logger)
}

// NewWeatherServiceWithProvider creates a weather service with a custom
// provider. This is useful for testing with mock providers.
func NewWeatherServiceWithProvider(provider CurrentWeatherProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Current(place string) (*Reading, error) {
	resp, err := s.provider.GetCurrentWeather(place)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	reading := &Reading{TemperatureCelsius: resp.Main.Temp}
	if len(resp.Weather) > 0 {
		reading.Description = resp.Weather[0].Description
	}
	return reading, nil
}

func (s *weatherService) ConditionsLine(place string) string {
	reading, err := s.Current(place)
	if err != nil {
		s.logger.Warn("falling back on weather line", "place", place, "error", err)
		return FallbackLine
	}

	// Temperature keeps provider-native precision
	temp := strconv.FormatFloat(reading.TemperatureCelsius, 'f', -1, 64)
	return fmt.Sprintf("🌡️ %s°C, %s", temp, capitalize(reading.Description))
}

// capitalize uppercases the first rune and lowercases the rest, matching
// how the provider's lowercase descriptions are displayed.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
