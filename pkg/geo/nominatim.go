package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Brno bounding box used to bias Nominatim results.
const brnoViewbox = "16.5,49.15,16.7,49.25"

type Result struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City string `json:"city"`
		Town string `json:"town"`
	} `json:"address"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search geocodes a free-form address. Queries that do not mention Brno are
// suffixed with it, and the first result whose address resolves to Brno wins
// over the overall first result.
func (c *Client) Search(ctx context.Context, query string) (*Result, error) {
	address := query
	if !strings.Contains(strings.ToLower(query), "brno") {
		address = query + ", Brno"
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", address)
	params.Set("limit", "5")
	params.Set("addressdetails", "1")
	params.Set("countrycodes", "cz")
	params.Set("viewbox", brnoViewbox)
	params.Set("bounded", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	// Nominatim usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", "KamSTim_App/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	best := results[0]
	for _, r := range results {
		if r.Address.City == "Brno" || r.Address.Town == "Brno" ||
			strings.Contains(strings.ToLower(r.DisplayName), "brno") {
			best = r
			break
		}
	}

	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocoding response: %w", err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocoding response: %w", err)
	}

	return &Result{Lat: lat, Lon: lon, DisplayName: best.DisplayName}, nil
}

var ErrNoMatch = fmt.Errorf("no matching location found")
