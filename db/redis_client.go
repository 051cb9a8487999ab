package db

import "context"

// RedisClient defines the key-value and geo operations the facility store
// relies on.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lng, radiusKm float64) ([]string, error)
	RemoveLocation(geoKey, memberKey string) error
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
