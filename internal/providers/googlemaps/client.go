package googlemaps

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://developers.google.com/maps/documentation/webservice
// Sample request: https://maps.googleapis.com/maps/api/geocode/json?address=Paris&key=KEY
const baseURL = "https://maps.googleapis.com"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "googlemaps-client"),
	}
}

// Geocode resolves a free-text address to coordinates.
func (c *Client) Geocode(address string) (*GeocodeAPIResponse, error) {
	q := url.Values{}
	q.Set("address", address)

	c.logger.Debug("geocoding address", "address", address)

	var apiResp GeocodeAPIResponse
	if err := c.get("/maps/api/geocode/json", q, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// NearbySearchByType runs a category-typed nearby search around a location.
func (c *Client) NearbySearchByType(lat, lng float64, radiusMeters int, placeType string) (*NearbySearchAPIResponse, error) {
	q := nearbyQuery(lat, lng, radiusMeters)
	q.Set("type", placeType)

	c.logger.Debug("nearby search by type", "type", placeType, "radius_m", radiusMeters)

	var apiResp NearbySearchAPIResponse
	if err := c.get("/maps/api/place/nearbysearch/json", q, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// NearbySearchByKeyword runs a keyword nearby search around a location.
func (c *Client) NearbySearchByKeyword(lat, lng float64, radiusMeters int, keyword string) (*NearbySearchAPIResponse, error) {
	q := nearbyQuery(lat, lng, radiusMeters)
	q.Set("keyword", keyword)

	c.logger.Debug("nearby search by keyword", "keyword", keyword, "radius_m", radiusMeters)

	var apiResp NearbySearchAPIResponse
	if err := c.get("/maps/api/place/nearbysearch/json", q, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetDirections fetches driving directions between two free-text locations.
func (c *Client) GetDirections(origin, destination string) (*DirectionsAPIResponse, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", "driving")

	c.logger.Debug("fetching directions", "origin", origin, "destination", destination)

	var apiResp DirectionsAPIResponse
	if err := c.get("/maps/api/directions/json", q, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

func nearbyQuery(lat, lng float64, radiusMeters int) url.Values {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%d", radiusMeters))
	return q
}

// get performs a GET against the given Maps Platform path, attaching the
// API key and decoding the JSON body into out.
func (c *Client) get(path string, q url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
