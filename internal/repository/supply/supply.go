package supply

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"marketplace/internal/entities"
)

const (
	searchRadiusKm = 5.0
	// a provider counts as available while its last ping is this fresh
	freshnessWindow = 5 * time.Minute
)

// Repository keeps the live supply index in Redis: a GEO set per provider
// role for proximity search and a last-seen index for availability counts.
// Writes are lock-free; a stale read only skews the surge input slightly.
type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) UpsertProvider(ctx context.Context, loc entities.ProviderLocation) error {
	pipe := r.client.Pipeline()
	pipe.GeoAdd(ctx, geoKey(loc.Role), &redis.GeoLocation{
		Name:      loc.ProviderID,
		Longitude: loc.Lng,
		Latitude:  loc.Lat,
	})
	pipe.ZAdd(ctx, lastSeenKey(loc.Role), redis.Z{
		Score:  float64(time.Now().UTC().Unix()),
		Member: loc.ProviderID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("unexpected supply repository upsert error: %w", err)
	}
	return nil
}

// Nearest returns up to limit providers around the point, closest first.
func (r *Repository) Nearest(ctx context.Context, role entities.Role, lat, lng float64, limit int) ([]entities.ProviderLocation, error) {
	res, err := r.client.GeoRadius(ctx, geoKey(role), lng, lat, &redis.GeoRadiusQuery{
		Radius:    searchRadiusKm,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Count:     limit,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("unexpected supply repository radius search error: %w", err)
	}

	out := make([]entities.ProviderLocation, 0, len(res))
	for _, g := range res {
		out = append(out, entities.ProviderLocation{
			ProviderID: g.Name,
			Role:       role,
			Lat:        g.Latitude,
			Lng:        g.Longitude,
			DistanceKm: g.Dist,
		})
	}
	return out, nil
}

// AvailableProviders counts providers that pinged within the freshness window.
func (r *Repository) AvailableProviders(ctx context.Context, role entities.Role) (int, error) {
	cutoff := time.Now().UTC().Add(-freshnessWindow).Unix()

	count, err := r.client.ZCount(
		ctx,
		lastSeenKey(role),
		fmt.Sprintf("%d", cutoff),
		"+inf",
	).Result()
	if err != nil {
		return 0, fmt.Errorf("unexpected supply repository availability count error: %w", err)
	}
	return int(count), nil
}

func geoKey(role entities.Role) string {
	return "supply:geo:" + string(role)
}

func lastSeenKey(role entities.Role) string {
	return "supply:last_seen:" + string(role)
}
