package util

import (
	"encoding/json"
	"fmt"
	"os"

	"sos-server/models"
)

// ReadFeedItemsFromJSON loads a slice of feed items from JSON on disk. Used
// by the mock feed client to serve fixture rows.
func ReadFeedItemsFromJSON[T any](filePath string) ([]T, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed items: %w", err)
	}
	return items, nil
}

// ReadFacilitiesFromJSON loads a slice of facilities from JSON on disk.
func ReadFacilitiesFromJSON(filePath string) ([]models.Facility, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var facilities []models.Facility
	if err := json.Unmarshal(data, &facilities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facilities: %w", err)
	}
	return facilities, nil
}

// ReadFacilityFromJSON loads a single facility from JSON on disk.
func ReadFacilityFromJSON(filePath string) (*models.Facility, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var f models.Facility
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facility: %w", err)
	}
	return &f, nil
}
