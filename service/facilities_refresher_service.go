package services

import (
	"log"
	"time"

	"sos-server/api/nemc"
	"sos-server/config"
	"sos-server/dao/redis"
	"sos-server/models"
	"sos-server/observability"

	"github.com/go-playground/validator/v10"
)

// FacilitiesRefresherService pulls the public-data feeds and replaces the
// stored facility snapshots.
type FacilitiesRefresherService struct {
	facilityDao *redis.RedisFacilityDAO
	nemcAPI     nemc.NemcAPI
	metrics     *observability.Metrics
	validate    *validator.Validate
}

// NewFacilitiesRefresherService constructs a refresher with dependencies.
func NewFacilitiesRefresherService(
	facilityDao *redis.RedisFacilityDAO,
	nemcAPI nemc.NemcAPI,
	metrics *observability.Metrics,
) *FacilitiesRefresherService {
	return &FacilitiesRefresherService{
		facilityDao: facilityDao,
		nemcAPI:     nemcAPI,
		metrics:     metrics,
		validate:    validator.New(),
	}
}

// StartPeriodicJob launches the background refresh loop at the given
// interval.
func (fr *FacilitiesRefresherService) StartPeriodicJob(interval time.Duration) {
	go fr.startPeriodicJob(interval)
}

func (fr *FacilitiesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[FacilitiesRefresherService] Running periodic facilities refresh.")
		if err := fr.RefreshAll(); err != nil {
			log.Printf("[FacilitiesRefresherService] RefreshAll returned error: %v", err)
		}
	}
}

// RefreshAll refreshes every category. Individual category failures are
// logged and counted but do not stop the remaining categories.
func (fr *FacilitiesRefresherService) RefreshAll() error {
	var firstErr error
	run := func(category string, refresh func() (int, error)) {
		count, err := refresh()
		if err != nil {
			log.Printf("[FacilitiesRefresherService] %s refresh failed: %v", category, err)
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		log.Printf("[FacilitiesRefresherService] %s refresh complete: %d facilities", category, count)
	}

	run(models.CATEGORY_EMERGENCY, fr.RefreshHospitals)
	run(models.CATEGORY_PHARMACY, fr.RefreshPharmacies)
	run(models.CATEGORY_AED, fr.RefreshAEDs)
	run(models.CATEGORY_ANIMAL_HOSPITAL, fr.RefreshAnimalHospitals)
	return firstErr
}

// RefreshHospitals joins the realtime bed feed with the hospital base list
// and upserts the result. Hospitals are upserted in place rather than
// purged: the realtime feed is the driving side and may cover a subset.
func (fr *FacilitiesRefresherService) RefreshHospitals() (int, error) {
	done := fr.observeSync(models.CATEGORY_EMERGENCY)

	beds, err := fr.nemcAPI.FetchRealtimeBeds(config.SYNC_CITY, config.SYNC_DISTRICT)
	if err != nil {
		return done(0, err)
	}
	baseList, err := fr.nemcAPI.FetchHospitalList(config.SYNC_CITY, config.SYNC_DISTRICT)
	if err != nil {
		return done(0, err)
	}

	baseByID := make(map[string]*nemc.HospitalItem, len(baseList))
	for i := range baseList {
		baseByID[baseList[i].HPID] = &baseList[i]
	}

	now := time.Now()
	count := 0
	for _, rt := range beds {
		facility, ok := FacilityFromHospital(rt, baseByID[rt.HPID], now)
		if !ok {
			continue
		}
		if !fr.upsert(facility) {
			continue
		}

		bed := BedStatusFromItem(rt)
		if err := fr.facilityDao.SetBedStatus(&bed); err != nil {
			log.Printf("[FacilitiesRefresherService] Failed to cache bed status for %s: %v", rt.HPID, err)
		}
		count++
	}
	return done(count, nil)
}

// RefreshPharmacies replaces the pharmacy snapshot from the feed.
func (fr *FacilitiesRefresherService) RefreshPharmacies() (int, error) {
	done := fr.observeSync(models.CATEGORY_PHARMACY)

	items, err := fr.nemcAPI.FetchPharmacyList(config.SYNC_CITY, config.SYNC_DISTRICT)
	if err != nil {
		return done(0, err)
	}

	fr.purgeCategory(models.CATEGORY_PHARMACY)

	now := time.Now()
	count := 0
	for _, item := range items {
		facility, ok := FacilityFromPharmacy(item, now)
		if !ok {
			continue
		}
		if fr.upsert(facility) {
			count++
		}
	}
	return done(count, nil)
}

// RefreshAEDs replaces the AED snapshot from the feed.
func (fr *FacilitiesRefresherService) RefreshAEDs() (int, error) {
	done := fr.observeSync(models.CATEGORY_AED)

	items, err := fr.nemcAPI.FetchAEDList(config.SYNC_CITY, config.SYNC_DISTRICT)
	if err != nil {
		return done(0, err)
	}

	fr.purgeCategory(models.CATEGORY_AED)

	now := time.Now()
	count := 0
	for _, item := range items {
		facility, ok := FacilityFromAED(item, now)
		if !ok {
			continue
		}
		if fr.upsert(facility) {
			count++
		}
	}
	return done(count, nil)
}

// RefreshAnimalHospitals replaces the animal hospital snapshot from the
// feed.
func (fr *FacilitiesRefresherService) RefreshAnimalHospitals() (int, error) {
	done := fr.observeSync(models.CATEGORY_ANIMAL_HOSPITAL)

	items, err := fr.nemcAPI.FetchAnimalHospitalList()
	if err != nil {
		return done(0, err)
	}

	fr.purgeCategory(models.CATEGORY_ANIMAL_HOSPITAL)

	now := time.Now()
	count := 0
	for _, item := range items {
		facility, ok := FacilityFromAnimalHospital(item, now)
		if !ok {
			continue
		}
		if fr.upsert(facility) {
			count++
		}
	}
	return done(count, nil)
}

// upsert validates and stores one facility, logging and skipping invalid
// rows.
func (fr *FacilitiesRefresherService) upsert(f models.Facility) bool {
	if err := fr.validate.Struct(f); err != nil {
		log.Printf("[FacilitiesRefresherService] Dropping invalid facility %s: %v", f.FacilityID, err)
		return false
	}
	if err := fr.facilityDao.UpsertFacility(f); err != nil {
		log.Printf("[FacilitiesRefresherService] Upsert failed for %s: %v", f.FacilityID, err)
		return false
	}
	fr.metrics.FacilitiesSynced.WithLabelValues(f.Category).Inc()
	return true
}

func (fr *FacilitiesRefresherService) purgeCategory(category string) {
	deleted, err := fr.facilityDao.DeleteCategory(category)
	if err != nil {
		log.Printf("[FacilitiesRefresherService] Purge of %s failed: %v", category, err)
		return
	}
	log.Printf("[FacilitiesRefresherService] Purged %d stored %s facilities", deleted, category)
}

// observeSync returns a completion func recording duration and the error
// counter for one category sync.
func (fr *FacilitiesRefresherService) observeSync(category string) func(int, error) (int, error) {
	start := time.Now()
	return func(count int, err error) (int, error) {
		fr.metrics.SyncDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
		if err != nil {
			fr.metrics.SyncErrors.WithLabelValues(category).Inc()
		}
		return count, err
	}
}
