package db_test

import (
	"context"
	"encoding/json"
	"testing"

	"sos-server/db"
)

func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Add a GeoRedisClient entry against a real Redis for integration runs.
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

func TestRedisClient_AddLocationWithJSONAndGetLocationsWithinRadius(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	geoKey := "facilities"
	memberKey := "facility123"
	latitude, longitude := 37.5665, 126.9780

	facility := map[string]string{
		"id":   "facility123",
		"name": "Test Pharmacy",
	}

	err := client.AddLocationWithJSON(context.Background(), geoKey, memberKey, latitude, longitude, facility)
	if err != nil {
		t.Fatalf("AddLocationWithJSON failed: %v", err)
	}

	results, err := client.GetLocationsWithinRadius(geoKey, latitude, longitude, 5)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	var retrieved map[string]string
	if err := json.Unmarshal([]byte(results[0]), &retrieved); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if retrieved["id"] != "facility123" {
		t.Errorf("Expected facility ID 'facility123', got '%s'", retrieved["id"])
	}
}

func TestMockRedisClient_RadiusOmitsDistantMembers(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	ctx := context.Background()

	// ~1 km and ~40 km from the query point.
	_ = client.AddLocationWithJSON(ctx, "facilities", "near", 37.5755, 126.9780, map[string]string{"id": "near"})
	_ = client.AddLocationWithJSON(ctx, "facilities", "far", 37.9000, 127.2000, map[string]string{"id": "far"})

	results, err := client.GetLocationsWithinRadius("facilities", 37.5665, 126.9780, 5)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected only the near member, got %d results", len(results))
	}
}

func TestMockRedisClient_RemoveLocation(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	ctx := context.Background()

	_ = client.AddLocationWithJSON(ctx, "facilities", "gone", 37.5665, 126.9780, map[string]string{"id": "gone"})
	if err := client.RemoveLocation("facilities", "gone"); err != nil {
		t.Fatalf("RemoveLocation failed: %v", err)
	}

	results, err := client.GetLocationsWithinRadius("facilities", 37.5665, 126.9780, 5)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results after removal, got %d", len(results))
	}
}

func TestRedisClient_Ping(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	if err := client.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
