package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Ashish12122003/Menumate-backend/configs"
	"github.com/Ashish12122003/Menumate-backend/middlewares"
	"github.com/Ashish12122003/Menumate-backend/repository"
	"github.com/Ashish12122003/Menumate-backend/routes"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// image storage
	upload, err := services.NewUploadService(context.Background(), cfg.AWSRegion, cfg.AWSBucket)
	if err != nil {
		log.Fatalf("upload service failed: %v", err)
	}

	// real-time notifications
	hub := ws.NewNotifyHub(services.NewShopService(repository.NewShopRepository(db)))
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.FrontendURL))
	routes.RegisterRoutes(r, db, cfg, hub, upload)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
