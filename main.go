package main

import (
	"log"

	"sabor-backend/configs"
	"sabor-backend/routes"
	"sabor-backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Live feed hub
	hub := ws.NewLiveHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
