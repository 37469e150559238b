// Package geocode implements reverse geocoding backed by the LocationIQ
// HTTP API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/service"

	"golang.org/x/time/rate"
)

const defaultTimeout = 10 * time.Second

// LocationIQ's free tier allows 2 requests per second. The limiter keeps
// bursty cache misses under that cap instead of burning the daily quota on
// 429 responses.
const requestsPerSecond = 2

// reverseResponse is the LocationIQ reverse endpoint payload.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Road        string `json:"road"`
		Suburb      string `json:"suburb"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
		Postcode    string `json:"postcode"`
	} `json:"address"`
}

type locationIQGeocoder struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewLocationIQGeocoder creates the HTTP client for the LocationIQ reverse
// geocoding API.
func NewLocationIQGeocoder(cfg *config.Config) service.Geocoder {
	timeout := cfg.LocationIQ.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &locationIQGeocoder{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.LocationIQ.BaseURL, "/"),
		apiKey:     cfg.LocationIQ.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// ReverseGeocode resolves a coordinate pair to address data.
func (c *locationIQGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*entity.Location, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	u := c.baseURL + "/v1/reverse?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse endpoint returned %d", resp.StatusCode)
	}

	var result reverseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	addr := result.Address
	city := addr.City
	if city == "" {
		city = addr.Town
	}
	if city == "" {
		city = addr.Village
	}

	short := addr.Road
	if short == "" {
		short = addr.Suburb
	}
	if short == "" {
		short = city
	}

	return &entity.Location{
		Latitude:    lat,
		Longitude:   lon,
		Address:     short,
		City:        city,
		State:       addr.State,
		Country:     addr.Country,
		CountryCode: addr.CountryCode,
		PostalCode:  addr.Postcode,
		DisplayName: result.DisplayName,
	}, nil
}
