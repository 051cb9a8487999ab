package location

import (
	"context"
	"errors"
	"time"
)

// LOCATION_REQUEST_TIMEOUT bounds a single location fix; there is no retry
// and no caching of stale fixes.
const LOCATION_REQUEST_TIMEOUT = 5 * time.Second

// Failure kinds surfaced to callers. The provider does not retry or fall
// back internally; that policy belongs to the caller.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrTimeout             = errors.New("location request timed out")
	ErrPositionUnavailable = errors.New("position unavailable")
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Provider resolves the caller's current location. Each call is a one-shot
// request that resolves or fails exactly once; failures are one of the
// typed errors above (possibly wrapped).
type Provider interface {
	CurrentLocation(ctx context.Context) (*Location, error)
}
