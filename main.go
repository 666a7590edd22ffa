package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/VicJoao/CardapioRU/config"
	"github.com/VicJoao/CardapioRU/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file loaded")
	}

	container := di.NewContainer("prod")

	log.Println("[MAIN] Running initial menu refresh")
	if err := container.MenuRefresherService.RefreshMenuData(); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	}

	log.Println("[MAIN] Starting periodic refresh job")
	if err := container.MenuRefresherService.StartPeriodicJob(config.RefresherSchedule()); err != nil {
		log.Fatalf("[MAIN] Failed to schedule refresh job: %v", err)
	}
	defer container.MenuRefresherService.Stop()

	log.Println("[MAIN] Starting server")
	container.CardapioHttpServer.Start()
}
