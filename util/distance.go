package util

import (
	"fmt"
	"math"
	"sort"
)

// EARTH_RADIUS_KM is the spherical-approximation Earth radius used by the
// haversine formula.
const EARTH_RADIUS_KM = 6371.0

// Located is any record carrying a WGS84 coordinate pair.
type Located interface {
	Coordinates() (lat float64, lng float64)
}

// WithDistance pairs an item with its computed distance from the query
// origin, leaving the item itself untouched.
type WithDistance[T Located] struct {
	Item     T       `json:"item"`
	Distance float64 `json:"distance"`
}

// GetDistance returns the great-circle distance in kilometers between two
// coordinates, using the haversine formula.
func GetDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EARTH_RADIUS_KM * c
}

func toRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// FormatDistance renders a distance for display: whole meters under 1 km,
// otherwise one decimal place of kilometers.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		meters := int(math.Round(distanceKm * 1000))
		return fmt.Sprintf("%dm", meters)
	}
	return fmt.Sprintf("%.1fkm", distanceKm)
}

// SortByDistance annotates each item with its distance from the user
// location and returns a fresh slice sorted ascending by that distance.
// sort.Slice is not guaranteed stable, so equal distances keep no
// particular order.
func SortByDistance[T Located](items []T, userLat, userLng float64) []WithDistance[T] {
	out := make([]WithDistance[T], 0, len(items))
	for _, item := range items {
		lat, lng := item.Coordinates()
		out = append(out, WithDistance[T]{
			Item:     item,
			Distance: GetDistance(userLat, userLng, lat, lng),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// FilterByRadius keeps items within radiusKm of the user location. The
// boundary is inclusive.
func FilterByRadius[T Located](items []T, userLat, userLng, radiusKm float64) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		lat, lng := item.Coordinates()
		if GetDistance(userLat, userLng, lat, lng) <= radiusKm {
			out = append(out, item)
		}
	}
	return out
}
