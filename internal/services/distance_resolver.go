package services

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"cartrans-backend/internal/config"
	"cartrans-backend/internal/utils"
)

// DistanceResolver maps an origin/destination city pair to kilometers.
// Resolution order: fixed-route nominal distance, offline matrix, external
// routing provider (when an API key is configured), then a flat fallback.
// It never returns an error; provider failures are absorbed into the fallback.
type DistanceResolver struct {
	Cfg        config.Pricing
	APIKey     string
	APIURL     string
	HTTPClient *http.Client
	RequestID  string
}

func (s DistanceResolver) Resolve(cityFrom, cityTo string) int {
	key := config.RouteKey(cityFrom, cityTo)

	// Fixed routes are flat-priced; distance only feeds duration math,
	// so a nominal value is enough.
	if _, ok := s.Cfg.FixedRoutes[key]; ok {
		return s.Cfg.FallbackDistanceKm
	}

	if km, ok := s.Cfg.DistanceMatrix[key]; ok {
		return km
	}

	if s.APIKey != "" {
		if km, err := s.queryProvider(cityFrom, cityTo); err == nil {
			return km
		} else {
			utils.LogEvent(s.RequestID, "distance", "provider_fallback", err.Error())
		}
	}

	return s.Cfg.FallbackDistanceKm
}

// orsResponse covers the part of the OpenRouteService directions payload we
// read: the driving distance of the first segment, in meters.
type orsResponse struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

func (s DistanceResolver) queryProvider(cityFrom, cityTo string) (int, error) {
	u, err := url.Parse(s.APIURL + "/directions/driving-car")
	if err != nil {
		return 0, fmt.Errorf("bad distance api url: %w", err)
	}

	q := u.Query()
	q.Set("api_key", s.APIKey)
	q.Set("start", cityFrom+", Россия")
	q.Set("end", cityTo+", Россия")
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("build distance request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client().Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance provider status: %s", resp.Status)
	}

	var parsed orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decode distance response: %w", err)
	}

	if len(parsed.Features) == 0 || len(parsed.Features[0].Properties.Segments) == 0 {
		return 0, fmt.Errorf("distance response has no segments")
	}

	meters := parsed.Features[0].Properties.Segments[0].Distance
	if meters <= 0 {
		return 0, fmt.Errorf("distance response has non-positive distance")
	}

	return int(math.Round(meters / 1000)), nil
}

func (s DistanceResolver) client() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}
