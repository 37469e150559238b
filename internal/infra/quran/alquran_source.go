// Package quran implements the Quran text source backed by the AlQuran
// Cloud HTTP API, used once to seed the local cache.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/service"
)

const defaultTimeout = 15 * time.Second

// surahResponse is the AlQuran Cloud surah endpoint wrapper.
type surahResponse struct {
	Code int `json:"code"`
	Data struct {
		Number         int    `json:"number"`
		Name           string `json:"name"`
		EnglishName    string `json:"englishName"`
		RevelationType string `json:"revelationType"`
		NumberOfAyahs  int    `json:"numberOfAyahs"`
		Ayahs          []struct {
			Number        int    `json:"number"`
			Text          string `json:"text"`
			NumberInSurah int    `json:"numberInSurah"`
			Juz           int    `json:"juz"`
			Page          int    `json:"page"`
		} `json:"ayahs"`
	} `json:"data"`
}

type alquranSource struct {
	httpClient *http.Client
	baseURL    string
}

// NewAlquranSource creates the HTTP client for the AlQuran Cloud API.
func NewAlquranSource(cfg *config.Config) service.QuranSource {
	timeout := cfg.QuranAPI.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &alquranSource{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.QuranAPI.BaseURL, "/"),
	}
}

// FetchSurah returns the surah metadata and ayah texts for one surah in the
// given edition.
func (c *alquranSource) FetchSurah(ctx context.Context, number int, edition string) (*entity.Surah, error) {
	u := fmt.Sprintf("%s/v1/surah/%d/%s", c.baseURL, number, edition)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch surah %d: %w", number, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("surah endpoint returned %d for surah %d", resp.StatusCode, number)
	}

	var result surahResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	data := result.Data
	surah := &entity.Surah{
		ID:             data.Number,
		Name:           data.Name,
		EnglishName:    data.EnglishName,
		NumberOfAyahs:  data.NumberOfAyahs,
		RevelationType: data.RevelationType,
		Ayahs:          make([]entity.Ayah, 0, len(data.Ayahs)),
	}
	for _, ayah := range data.Ayahs {
		surah.Ayahs = append(surah.Ayahs, entity.Ayah{
			ID:            ayah.Number,
			SurahID:       data.Number,
			NumberInSurah: ayah.NumberInSurah,
			Juz:           ayah.Juz,
			Page:          ayah.Page,
			TextArabic:    ayah.Text,
		})
	}

	return surah, nil
}
