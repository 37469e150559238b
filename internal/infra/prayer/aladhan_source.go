// Package prayer implements the prayer timing source backed by the AlAdhan
// HTTP API.
package prayer

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
)

const defaultTimeout = 10 * time.Second

// timingsResponse is the AlAdhan timings endpoint wrapper.
type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
	} `json:"data"`
}

type aladhanSource struct {
	httpClient *http.Client
	baseURL    string
	method     int
}

// NewAladhanSource creates the HTTP client for the AlAdhan timings API.
func NewAladhanSource(cfg *config.Config) service.PrayerTimesSource {
	timeout := cfg.PrayerAPI.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &aladhanSource{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.PrayerAPI.BaseURL, "/"),
		method:     cfg.PrayerAPI.Method,
	}
}

// FetchTimings returns the five prayer clock times for the given date and
// coordinates.
func (c *aladhanSource) FetchTimings(ctx context.Context, date time.Time, lat, lon float64) (*entity.PrayerTimes, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("method", strconv.Itoa(c.method))

	u := fmt.Sprintf("%s/v1/timings/%s?%s", c.baseURL, date.Format("02-01-2006"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timings: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timings endpoint returned %d", resp.StatusCode)
	}

	var result timingsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &entity.PrayerTimes{
		Date:    date,
		Fajr:    cleanClock(result.Data.Timings.Fajr),
		Dhuhr:   cleanClock(result.Data.Timings.Dhuhr),
		Asr:     cleanClock(result.Data.Timings.Asr),
		Maghrib: cleanClock(result.Data.Timings.Maghrib),
		Isha:    cleanClock(result.Data.Timings.Isha),
	}, nil
}

// cleanClock strips timezone suffixes the API sometimes appends, e.g.
// "04:38 (WIB)" becomes "04:38".
func cleanClock(clock string) string {
	clock = strings.TrimSpace(clock)
	if idx := strings.IndexByte(clock, ' '); idx > 0 {
		clock = clock[:idx]
	}

	return clock
}
