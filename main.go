package main

import (
	"fmt"
	"log"
	"time"

	"sos-server/config"
	"sos-server/di"
)

func main() {
	container := di.NewContainer("prod")

	fmt.Println("refreshing facilities!")
	if err := container.FacilitiesRefresherService.RefreshAll(); err != nil {
		log.Printf("[MAIN] Initial refresh finished with errors: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.FacilitiesRefresherService.StartPeriodicJob(config.FACILITIES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.SosHttpServer.Start()
}
