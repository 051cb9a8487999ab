package location

import "context"

// ProviderMock returns a fixed location, for wiring without a geolocation
// endpoint. Zero-value coordinates default to central Seoul.
type ProviderMock struct {
	Lat float64
	Lng float64
	Err error
}

// NewProviderMock creates a mock provider pinned to the given coordinates.
func NewProviderMock(lat, lng float64) *ProviderMock {
	return &ProviderMock{Lat: lat, Lng: lng}
}

func (m *ProviderMock) CurrentLocation(ctx context.Context) (*Location, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Lat == 0 && m.Lng == 0 {
		return &Location{Lat: 37.5665, Lng: 126.9780}, nil
	}
	return &Location{Lat: m.Lat, Lng: m.Lng}, nil
}
