package di

import (
	"context"
	"fmt"
	"log"

	"sos-server/api"
	"sos-server/api/nemc"
	"sos-server/config"
	"sos-server/dao/redis"
	"sos-server/db"
	"sos-server/location"
	"sos-server/observability"
	"sos-server/server"
	"sos-server/server/handlers"
	services "sos-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                db.RedisClient
	RedisFacilityDao           *redis.RedisFacilityDAO
	NemcAPI                    nemc.NemcAPI
	LocationProvider           location.Provider
	Metrics                    *observability.Metrics
	FacilityService            *services.FacilityService
	FacilitiesRefresherService *services.FacilitiesRefresherService
	FacilityHandler            *handlers.FacilityHandler
	MuxRouter                  *mux.Router
	Router                     *server.Router
	SosHttpServer              *server.SosHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Facility DAO
	redisFacilityDao := redis.NewRedisFacilityDAO(redisClient)

	// Initialize the public data feed client - mock outside prod
	var nemcAPI nemc.NemcAPI
	if env != "prod" {
		nemcAPI = nemc.NewNemcApiClientMock()
		log.Printf("Using mock NEMC api")
	} else {
		log.Printf("Using prod NEMC api")
		httpClient := api.NewHTTPClient(config.NEMC_ENDPOINT_BASE)

		nemcAPI = nemc.NewNemcApiClient(httpClient)
		nemcAPI.SetServiceKey(config.GetServiceKey())
	}

	// Initialize the location provider - mock outside prod
	var locationProvider location.Provider
	if env != "prod" {
		locationProvider = &location.ProviderMock{}
	} else {
		locationProvider = location.NewGeoHTTPClient(config.GEOLOCATION_ENDPOINT_BASE)
	}

	// Initialize metrics
	metrics := observability.NewMetrics()

	// Initialize service layer
	facilityService := services.NewFacilityService(redisFacilityDao, locationProvider, metrics)
	facilitiesRefresherService := services.NewFacilitiesRefresherService(redisFacilityDao, nemcAPI, metrics)

	// Initialize facility handler
	facilityHandler := handlers.NewFacilityHandler(facilityService, facilitiesRefresherService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(facilityHandler, muxRouter)

	// initialize sos server
	sosHttpServer := server.NewSosHttpServer(router, muxRouter)

	return &Container{
		RedisClient:                redisClient,
		RedisFacilityDao:           redisFacilityDao,
		NemcAPI:                    nemcAPI,
		LocationProvider:           locationProvider,
		Metrics:                    metrics,
		FacilityService:            facilityService,
		FacilitiesRefresherService: facilitiesRefresherService,
		FacilityHandler:            facilityHandler,
		MuxRouter:                  muxRouter,
		Router:                     router,
		SosHttpServer:              sosHttpServer,
	}
}
