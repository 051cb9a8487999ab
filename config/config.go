package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const HTTP_SERVER_ADDRESS = ":8080"

// Facilities Refresher config
const FACILITIES_REFRESHER_SCHEDULE_MINUTES = 30

// Public data portal (NEMC + animal hospital feeds)
const NEMC_ENDPOINT_BASE = "http://apis.data.go.kr"

// Region the sync jobs pull. City is required by the feeds, district
// narrows the result set.
const SYNC_CITY = "서울특별시"
const SYNC_DISTRICT = ""

// Geolocation lookup service
const GEOLOCATION_ENDPOINT_BASE = "https://ipapi.co"

// Default map view when the caller gives no location
const DEFAULT_MAP_CENTER_LAT = 37.5665
const DEFAULT_MAP_CENTER_LNG = 126.9780
const DEFAULT_MAP_RADIUS_KM = 5.0

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const HOSPITALS_RESOURCE = "hospitals.json"
const REALTIME_BEDS_RESOURCE = "realtime_beds.json"
const PHARMACIES_RESOURCE = "pharmacies.json"
const AEDS_RESOURCE = "aeds.json"
const ANIMAL_HOSPITALS_RESOURCE = "animal_hospitals.json"

// GetServiceKey reads the data portal service key from the environment.
func GetServiceKey() string {
	return os.Getenv("NEMC_SERVICE_KEY")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
