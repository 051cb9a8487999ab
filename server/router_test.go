package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sos-server/api/nemc"
	"sos-server/dao/redis"
	"sos-server/db"
	"sos-server/location"
	"sos-server/observability"
	"sos-server/server/handlers"
	services "sos-server/service"

	"github.com/gorilla/mux"
)

// nemcAPIStub returns empty feeds so sync routes succeed without a portal.
type nemcAPIStub struct{}

func (nemcAPIStub) FetchHospitalList(city, district string) ([]nemc.HospitalItem, error) {
	return nil, nil
}
func (nemcAPIStub) FetchRealtimeBeds(city, district string) ([]nemc.BedItem, error) {
	return nil, nil
}
func (nemcAPIStub) FetchPharmacyList(city, district string) ([]nemc.PharmacyItem, error) {
	return nil, nil
}
func (nemcAPIStub) FetchAEDList(city, district string) ([]nemc.AEDItem, error) {
	return nil, nil
}
func (nemcAPIStub) FetchAnimalHospitalList() ([]nemc.AnimalHospitalItem, error) {
	return nil, nil
}
func (nemcAPIStub) SetServiceKey(serviceKey string) {}

func newTestRouter() *mux.Router {
	dao := redis.NewRedisFacilityDAO(db.NewMockRedisClient(context.Background()))
	metrics := observability.NewMetricsForTesting()
	facilityService := services.NewFacilityService(dao, &location.ProviderMock{}, metrics)
	refresherService := services.NewFacilitiesRefresherService(dao, nemcAPIStub{}, metrics)
	facilityHandler := handlers.NewFacilityHandler(facilityService, refresherService)

	muxRouter := mux.NewRouter()
	NewRouter(facilityHandler, muxRouter).RegisterRoutes()
	return muxRouter
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Facilities Nearby",
			method:     "GET",
			path:       "/v1/facilities/nearby?lat=37.5665&lon=126.9780&radius=5",
			statusCode: http.StatusOK,
		},
		{
			name:       "Get Facilities Nearby Missing Args",
			method:     "GET",
			path:       "/v1/facilities/nearby",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Sync All",
			method:     "GET",
			path:       "/v1/sync/all",
			statusCode: http.StatusOK,
		},
		{
			name:       "Sync Category",
			method:     "GET",
			path:       "/v1/sync/PHARMACY",
			statusCode: http.StatusOK,
		},
		{
			name:       "Sync Unknown Category",
			method:     "GET",
			path:       "/v1/sync/BAKERY",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Current Location",
			method:     "GET",
			path:       "/v1/location/current",
			statusCode: http.StatusOK,
		},
		{
			name:       "Metrics",
			method:     "GET",
			path:       "/metrics",
			statusCode: http.StatusOK,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status":"pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && strings.TrimSpace(rr.Body.String()) != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_MapRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/v1/admin/facilities/map", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %s", ct)
	}
}
