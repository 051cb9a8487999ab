package services

import (
	"context"
	"log"

	"sos-server/dao/redis"
	"sos-server/location"
	"sos-server/models"
	"sos-server/observability"
	"sos-server/util"
)

// FacilityWithStatus pairs a facility with its computed distance and
// realtime status, plus the cached bed availability for hospitals.
type FacilityWithStatus struct {
	Facility     models.Facility       `json:"facility"`
	Distance     float64               `json:"distance"`
	DistanceText string                `json:"distance_text"`
	Status       models.BusinessStatus `json:"status"`
	BedStatus    *models.BedStatus     `json:"bed_status,omitempty"`
}

// FacilityService answers nearby queries with distance-ranked,
// status-annotated facilities.
type FacilityService struct {
	facilityDao      *redis.RedisFacilityDAO
	locationProvider location.Provider
	metrics          *observability.Metrics
}

// NewFacilityService constructs a FacilityService with its dependencies.
func NewFacilityService(
	facilityDao *redis.RedisFacilityDAO,
	locationProvider location.Provider,
	metrics *observability.Metrics) *FacilityService {

	return &FacilityService{
		facilityDao:      facilityDao,
		locationProvider: locationProvider,
		metrics:          metrics,
	}
}

// GetFacilitiesNearby returns facilities within radiusKm of the point,
// sorted ascending by distance, each annotated with its business status.
// category narrows to one facility kind; openNow drops pharmacies and
// animal hospitals that are not currently open or closing soon.
func (fs *FacilityService) GetFacilitiesNearby(lat, lng, radiusKm float64, category string, openNow bool) ([]FacilityWithStatus, error) {
	fs.metrics.NearbyRequests.Inc()

	facilities, err := fs.facilityDao.GetNearbyFacilities(lat, lng, radiusKm)
	if err != nil {
		return nil, err
	}

	if category != "" {
		filtered := make([]models.Facility, 0, len(facilities))
		for _, f := range facilities {
			if f.Category == category {
				filtered = append(filtered, f)
			}
		}
		facilities = filtered
	}

	ranked := util.SortByDistance(facilities, lat, lng)

	out := make([]FacilityWithStatus, 0, len(ranked))
	for _, r := range ranked {
		status := fs.statusFor(&r.Item)

		if openNow &&
			(r.Item.Category == models.CATEGORY_PHARMACY || r.Item.Category == models.CATEGORY_ANIMAL_HOSPITAL) &&
			status.Status != models.STATUS_OPEN && status.Status != models.STATUS_CLOSING_SOON {
			continue
		}

		entry := FacilityWithStatus{
			Facility:     r.Item,
			Distance:     r.Distance,
			DistanceText: util.FormatDistance(r.Distance),
			Status:       status,
		}

		if r.Item.Category == models.CATEGORY_EMERGENCY {
			bed, err := fs.facilityDao.GetBedStatus(r.Item.FacilityID)
			if err != nil {
				fs.metrics.BedStatusMiss.Inc()
			} else {
				entry.BedStatus = bed
			}
		}

		out = append(out, entry)
	}
	return out, nil
}

// GetAllFacilitiesAround returns the raw facility records around a point,
// without annotation. Used by the map plot.
func (fs *FacilityService) GetAllFacilitiesAround(lat, lng, radiusKm float64) ([]models.Facility, error) {
	return fs.facilityDao.GetNearbyFacilities(lat, lng, radiusKm)
}

// GetCurrentLocation resolves the caller's location through the configured
// provider. Failures pass through untyped so callers can map the
// location error kinds.
func (fs *FacilityService) GetCurrentLocation(ctx context.Context) (*location.Location, error) {
	loc, err := fs.locationProvider.CurrentLocation(ctx)
	if err != nil {
		log.Printf("[FacilityService] Location request failed: %v", err)
		return nil, err
	}
	return loc, nil
}

func (fs *FacilityService) statusFor(f *models.Facility) models.BusinessStatus {
	if f.Category == models.CATEGORY_ANIMAL_HOSPITAL {
		return util.GetAnimalHospitalStatus(f)
	}
	return util.GetPharmacyStatus(f)
}
