package main

import (
	"log"
	"os"

	"api/config"
	"api/database"
	"api/middleware"
	"api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title HireNext API
// @description Challenge marketplace backend: companies publish projects, users join them with solutions
// @version 1.0
// @BasePath /api
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.LoadConfig()

	database.InitDB()
	database.InitRedis()

	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", config.UploadDir)

	routes.Register(r)

	middleware.UpdateSystemMetrics()

	log.Printf("Server listening on port %s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
