package wikipedia

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://www.mediawiki.org/wiki/Extension:TextExtracts
// Sample request: https://en.wikipedia.org/w/api.php?action=query&prop=extracts|info&exsentences=5&explaintext=1&inprop=url&titles=Paris&format=json
const baseURL = "https://en.wikipedia.org/w/api.php"

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		userAgent:  "explore-places/1.0",
		logger:     logger.With("component", "wikipedia-client"),
	}
}

// FetchSummary fetches a plain-text extract limited to the given number of
// sentences, along with the canonical page URL and disambiguation marker.
func (c *Client) FetchSummary(title string, sentences int) (*SummaryAPIResponse, error) {
	title = strings.ReplaceAll(title, " ", "_")

	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "extracts|info|pageprops")
	q.Set("exsentences", strconv.Itoa(sentences))
	q.Set("explaintext", "1")
	q.Set("redirects", "1")
	q.Set("inprop", "url")
	q.Set("ppprop", "disambiguation")
	q.Set("titles", title)
	q.Set("format", "json")

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching wikipedia summary", "title", title, "sentences", sentences)

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp SummaryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
