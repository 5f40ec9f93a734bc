package explore

import (
	"explore-places/internal/travel"
)

// OverviewView is the overview response: weather, summary, recommendation.
type OverviewView struct {
	Place          string `json:"place"`
	Weather        string `json:"weather"`
	Summary        string `json:"summary"`
	ReferenceURL   string `json:"referenceUrl,omitempty"`
	Recommendation string `json:"recommendation"`
	LocalTime      string `json:"localTime,omitempty"`
}

// ListView is a category view: formatted candidate lines with distances.
type ListView struct {
	Place   string   `json:"place"`
	Weather string   `json:"weather"`
	Items   []string `json:"items"`
}

// TravelView is the how-to-reach response.
type TravelView struct {
	Place   string       `json:"place"`
	Origin  string       `json:"origin"`
	Weather string       `json:"weather"`
	Plan    *travel.Plan `json:"plan"`
}
