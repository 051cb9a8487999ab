package server

import (
	"sos-server/server/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	facilityHandler *handlers.FacilityHandler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	facilityHandler *handlers.FacilityHandler,
	router *mux.Router) *Router {
	return &Router{
		facilityHandler: facilityHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius_km(float)}
	// plus optional category, open_now and verbose flags
	r.router.HandleFunc("/v1/facilities/nearby", r.facilityHandler.GetFacilitiesNearby).Methods("GET")

	r.router.HandleFunc("/v1/sync/all", r.facilityHandler.SyncAll).Methods("GET")
	r.router.HandleFunc("/v1/sync/{category}", r.facilityHandler.SyncCategory).Methods("GET")

	r.router.HandleFunc("/v1/location/current", r.facilityHandler.GetCurrentLocation).Methods("GET")

	r.router.HandleFunc("/v1/admin/facilities/map", r.facilityHandler.GetFacilitiesMap).Methods("GET")

	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.router.HandleFunc("/ping", r.facilityHandler.Ping).Methods("GET")
}
