package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"sos-server/config"
	"sos-server/location"
	"sos-server/models"
	services "sos-server/service"
	"sos-server/util"

	"github.com/gorilla/mux"
)

const (
	LAT_QUERY_ARG      = "lat"
	LON_QUERY_ARG      = "lon"
	RADIUS_QUERY_ARG   = "radius"
	CATEGORY_QUERY_ARG = "category"
	OPEN_NOW_QUERY_ARG = "open_now"
	VERBOSE_QUERY_ARG  = "verbose"

	SYNC_CATEGORY_PATH_ARG = "category"
)

// MinifiedFacility is the small form returned when verbose=false.
type MinifiedFacility struct {
	FacilityID   string `json:"facility_id"`
	Category     string `json:"category"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	DistanceText string `json:"distance_text"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

// SyncResponse reports the outcome of a sync trigger.
type SyncResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type FacilityHandler struct {
	facilityService  *services.FacilityService
	refresherService *services.FacilitiesRefresherService
}

func NewFacilityHandler(
	facilityService *services.FacilityService,
	refresherService *services.FacilitiesRefresherService,
) *FacilityHandler {
	return &FacilityHandler{
		facilityService:  facilityService,
		refresherService: refresherService,
	}
}

// GetFacilitiesNearby handles GET /v1/facilities/nearby.
func (h *FacilityHandler) GetFacilitiesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	vals := r.URL.Query()
	category := vals.Get(CATEGORY_QUERY_ARG)
	openNow := false
	if v := vals.Get(OPEN_NOW_QUERY_ARG); v != "" {
		openNow, _ = strconv.ParseBool(v)
	}
	verbose := false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}

	facilities, err := h.facilityService.GetFacilitiesNearby(lat, lon, radius, category, openNow)
	if err != nil {
		log.Println("[FacilityHandler] Error loading nearby facilities:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.transform(facilities, verbose))
}

// SyncCategory handles GET /v1/sync/{category}.
func (h *FacilityHandler) SyncCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)[SYNC_CATEGORY_PATH_ARG]

	var count int
	var err error
	switch category {
	case models.CATEGORY_EMERGENCY:
		count, err = h.refresherService.RefreshHospitals()
	case models.CATEGORY_PHARMACY:
		count, err = h.refresherService.RefreshPharmacies()
	case models.CATEGORY_AED:
		count, err = h.refresherService.RefreshAEDs()
	case models.CATEGORY_ANIMAL_HOSPITAL:
		count, err = h.refresherService.RefreshAnimalHospitals()
	default:
		writeJSON(w, http.StatusBadRequest, SyncResponse{
			Success: false,
			Message: "Unknown category: " + category,
		})
		return
	}

	if err != nil {
		log.Printf("[FacilityHandler] Sync of %s failed: %v", category, err)
		writeJSON(w, http.StatusBadGateway, SyncResponse{
			Success: false,
			Count:   count,
			Message: "Sync failed: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, SyncResponse{
		Success: true,
		Count:   count,
		Message: "Synced " + category,
	})
}

// SyncAll handles GET /v1/sync/all.
func (h *FacilityHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	if err := h.refresherService.RefreshAll(); err != nil {
		log.Println("[FacilityHandler] Full sync finished with errors:", err)
		writeJSON(w, http.StatusBadGateway, SyncResponse{
			Success: false,
			Message: "Sync finished with errors: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, SyncResponse{
		Success: true,
		Message: "Synced all categories",
	})
}

// GetCurrentLocation handles GET /v1/location/current.
func (h *FacilityHandler) GetCurrentLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.facilityService.GetCurrentLocation(r.Context())
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, location.ErrPermissionDenied):
			status = http.StatusForbidden
		case errors.Is(err, location.ErrTimeout):
			status = http.StatusGatewayTimeout
		}
		log.Println("[FacilityHandler] Location lookup failed:", err)
		http.Error(w, "Could not resolve current location", status)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// GetFacilitiesMap handles GET /v1/admin/facilities/map, rendering the
// stored facilities as an HTML map.
func (h *FacilityHandler) GetFacilitiesMap(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.facilityService.GetAllFacilitiesAround(
		config.DEFAULT_MAP_CENTER_LAT,
		config.DEFAULT_MAP_CENTER_LNG,
		config.DEFAULT_MAP_RADIUS_KM,
	)
	if err != nil {
		log.Println("[FacilityHandler] Error loading facilities for map:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotFacilities(facilities, w); err != nil {
		log.Println("[FacilityHandler] Error rendering facilities map:", err)
	}
}

func (h *FacilityHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func (h *FacilityHandler) transform(facilities []services.FacilityWithStatus, verbose bool) interface{} {
	if verbose {
		return facilities
	}
	min := make([]MinifiedFacility, 0, len(facilities))
	for _, f := range facilities {
		min = append(min, MinifiedFacility{
			FacilityID:   f.Facility.FacilityID,
			Category:     f.Facility.Category,
			Name:         f.Facility.Name,
			Address:      f.Facility.Address,
			Phone:        f.Facility.Phone,
			DistanceText: f.DistanceText,
			Status:       f.Status.Status,
			Message:      f.Status.Message,
		})
	}
	return min
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("[FacilityHandler] Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *FacilityHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
