package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/degenscope/scanner-backend/internal/handlers"
)

type RouterConfig struct {
	AnalysisHandler *handlers.AnalysisHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/analyze", cfg.AnalysisHandler.Analyze)
		api.GET("/history", cfg.AnalysisHandler.History)
	}

	return router
}
