package main

import (
	"log"
	"log/slog"
	"os"

	"frontierwatch/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	h := handler.NewAnalyzeHandler()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	r.POST("/analyze", h.AnalyzeJSON)
	r.POST("/analyze/file", h.AnalyzeFile)
	r.POST("/analyze/folder", h.AnalyzeFolder)
	r.GET("/health", h.GetHealth)

	port := os.Getenv("BIAS_API_PORT")
	if port == "" {
		port = "5001"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
