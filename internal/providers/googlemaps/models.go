package googlemaps

// LatLng is the coordinate pair embedded in every Maps Platform geometry.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeAPIResponse mirrors the Geocoding API payload.
type GeocodeAPIResponse struct {
	Results []GeocodeResult `json:"results"`
	Status  string          `json:"status"`
}

// GeocodeResult is a single geocoding match.
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location LatLng `json:"location"`
	} `json:"geometry"`
}

// NearbySearchAPIResponse mirrors the Places nearby-search payload.
type NearbySearchAPIResponse struct {
	Results []NearbyResult `json:"results"`
	Status  string         `json:"status"`
}

// NearbyResult is a single place candidate. Rating is a pointer because the
// field is absent for unrated places, and absent must stay distinguishable
// from a zero rating.
type NearbyResult struct {
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   *float64 `json:"rating,omitempty"`
	Geometry struct {
		Location LatLng `json:"location"`
	} `json:"geometry"`
}

// DirectionsAPIResponse mirrors the Directions API payload down to the
// duration/distance text of the first leg.
type DirectionsAPIResponse struct {
	Routes []Route `json:"routes"`
	Status string  `json:"status"`
}

// Route is a single route with its legs.
type Route struct {
	Summary string     `json:"summary"`
	Legs    []RouteLeg `json:"legs"`
}

// RouteLeg carries the human-readable duration and distance of one leg.
type RouteLeg struct {
	Duration TextValue `json:"duration"`
	Distance TextValue `json:"distance"`
}

// TextValue is the Directions API's display-text/raw-value pair.
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}
