package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves the IANA timezone for a coordinate and the current wall
// clock there.
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	LocalTime(latitude, longitude float64) (time.Time, error)
}

type service struct {
	finder tzf.F
	now    func() time.Time
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service. The tzf
// finder loads its polygon data into memory once per process.
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{finder: finder, now: time.Now}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// e.g. "Asia/Kolkata" or "Europe/Paris".
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	tz := s.finder.GetTimezoneName(longitude, latitude)
	if tz == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return tz, nil
}

// LocalTime returns the current time at the given coordinates.
func (s *service) LocalTime(latitude, longitude float64) (time.Time, error) {
	tz, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load location %q: %w", tz, err)
	}
	return s.now().In(loc), nil
}
