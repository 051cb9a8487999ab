package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"sos-server/db"
	"sos-server/models"
)

const FACILITIES_GEO_KEY_V1 = "facilities_geo_v1"
const FACILITIES_GEO_MEMBER_FORMAT_V1 = "facilities_geo_place_v1:%s:%s"

// BED_STATUS_KEY_FORMAT caches realtime emergency-room bed availability per
// hospital.
const BED_STATUS_KEY_FORMAT = "bed_status_v1:%s"

// RedisFacilityDAO handles facility storage using the geo-indexed Redis
// client.
type RedisFacilityDAO struct {
	client db.RedisClient
}

// NewRedisFacilityDAO initializes a RedisFacilityDAO with the Redis client.
func NewRedisFacilityDAO(client db.RedisClient) *RedisFacilityDAO {
	return &RedisFacilityDAO{client: client}
}

func facilityMemberKey(category, facilityID string) string {
	return fmt.Sprintf(FACILITIES_GEO_MEMBER_FORMAT_V1, category, facilityID)
}

// UpsertFacility stores the facility as a geo member with its JSON payload.
func (dao *RedisFacilityDAO) UpsertFacility(f models.Facility) error {
	ctx := dao.client.GetContext()
	memberKey := facilityMemberKey(f.Category, f.FacilityID)
	return dao.client.AddLocationWithJSON(ctx, FACILITIES_GEO_KEY_V1, memberKey, f.Lat, f.Lng, f)
}

// GetNearbyFacilities retrieves facilities within radiusKm of the point. The
// radius boundary is inclusive.
func (dao *RedisFacilityDAO) GetNearbyFacilities(lat, lng, radiusKm float64) ([]models.Facility, error) {
	facilitiesJSON, err := dao.client.GetLocationsWithinRadius(FACILITIES_GEO_KEY_V1, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisFacilityDAO] failed to get facilities: %v", err)
	}

	facilities := make([]models.Facility, len(facilitiesJSON))
	for i, facilityJSON := range facilitiesJSON {
		if err := json.Unmarshal([]byte(facilityJSON), &facilities[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal facility JSON: %v", err)
		}
	}
	return facilities, nil
}

// DeleteCategory removes every stored facility of the given category. The
// feeds deliver full snapshots, so a sync replaces a category wholesale.
func (dao *RedisFacilityDAO) DeleteCategory(category string) (int, error) {
	pattern := facilityMemberKey(category, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to list facility keys for %s: %w", category, err)
	}

	deleted := 0
	for _, k := range keys {
		if err := dao.client.RemoveLocation(FACILITIES_GEO_KEY_V1, k); err != nil {
			log.Printf("[RedisFacilityDAO] Failed to remove %s: %v", k, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

// ListFacilityIDs returns the member IDs stored for a category.
func (dao *RedisFacilityDAO) ListFacilityIDs(category string) ([]string, error) {
	pattern := facilityMemberKey(category, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list facility keys: %w", err)
	}

	prefix := facilityMemberKey(category, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetBedStatus caches the realtime bed availability for a hospital.
func (dao *RedisFacilityDAO) SetBedStatus(b *models.BedStatus) error {
	key := fmt.Sprintf(BED_STATUS_KEY_FORMAT, b.HPID)
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bed status for %s: %w", b.HPID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set bed status in redis: %w", err)
	}
	return nil
}

// GetBedStatus retrieves the cached bed availability for a hospital.
func (dao *RedisFacilityDAO) GetBedStatus(hpid string) (*models.BedStatus, error) {
	key := fmt.Sprintf(BED_STATUS_KEY_FORMAT, hpid)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get bed status from redis: %w", err)
	}
	var b models.BedStatus
	if err := json.Unmarshal([]byte(str), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bed status JSON: %w", err)
	}
	return &b, nil
}

// DeleteBedStatus drops a hospital's cached bed availability.
func (dao *RedisFacilityDAO) DeleteBedStatus(hpid string) error {
	key := fmt.Sprintf(BED_STATUS_KEY_FORMAT, hpid)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete bed status key %s: %w", key, err)
	}
	return nil
}
