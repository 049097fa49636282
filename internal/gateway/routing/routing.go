package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

var ErrNoRoute = errors.New("no route between points")

// Gateway resolves road distance between two points through an OSRM-style
// HTTP routing server.
type Gateway struct {
	log     logger.Logger
	client  *http.Client
	baseURL string
}

func New(log logger.Logger, cfg *config.Routing) *Gateway {
	return &Gateway{
		log: log.With(
			logger.NewField("component", "routing-gateway"),
			logger.NewField("base_url", cfg.BaseURL),
		),
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		baseURL: cfg.BaseURL,
	}
}

// DistanceKm returns the driving distance between origin and destination.
// Transient failures are retried with backoff; ErrNoRoute is permanent.
func (g *Gateway) DistanceKm(ctx context.Context, origin, dest entities.Place) (float64, error) {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry: func(err error) bool {
			return !errors.Is(err, ErrNoRoute)
		},
	}

	retrier := backoff_adapter.New(retryConfig)

	var distanceMeters float64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		distanceMeters, err = g.route(ctx, origin, dest)
		return err
	})
	if err != nil {
		RequestErrorsTotal.Inc()
		g.log.With(
			logger.NewField("error", err),
		).Error("routing request failed")
		return 0, fmt.Errorf("routing gateway: %w", err)
	}

	return distanceMeters / 1000, nil
}

func (g *Gateway) route(ctx context.Context, origin, dest entities.Place) (float64, error) {
	url := fmt.Sprintf(
		"%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=false",
		g.baseURL, origin.Lng, origin.Lat, dest.Lng, dest.Lat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	RequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("routing request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			g.log.With(
				logger.NewField("error", err),
			).Error("failed to close routing response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing server status %d", resp.StatusCode)
	}

	var out struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode routing response: %w", err)
	}

	if out.Code != "Ok" || len(out.Routes) == 0 {
		return 0, fmt.Errorf("%w: code %q", ErrNoRoute, out.Code)
	}

	return out.Routes[0].Distance, nil
}
