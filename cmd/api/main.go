package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"platform-projections/internal/api/handlers"
	"platform-projections/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS(), middleware.Logger(), middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "projections"})
	})

	projection := handlers.NewProjectionHandler()
	interpolate := handlers.NewInterpolateHandler()

	api := router.Group("/api/v1")
	{
		api.POST("/projection", projection.RunProjection)
		api.POST("/projection/compare", projection.CompareScenarios)
		api.POST("/interpolate", interpolate.Interpolate)

		api.GET("/scenarios", handlers.ListScenarios)
		api.GET("/inputs", handlers.ListInputs)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("projection API listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
