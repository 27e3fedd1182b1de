package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isowyrm/isowyrm/internal/config"
	"github.com/isowyrm/isowyrm/internal/handler"
	"github.com/isowyrm/isowyrm/internal/middleware"
	"github.com/isowyrm/isowyrm/internal/repository"
	"github.com/isowyrm/isowyrm/internal/service"
)

// SetupRouter wires middleware, handlers and routes.
func SetupRouter(cfg *config.Config, repo *repository.ActivityRepository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS middleware so charts embed anywhere.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "isowyrm is running",
		})
	})

	chartService := service.NewChartService(repo, &http.Client{Timeout: 20 * time.Second}, cfg.CacheTTL)
	chartHandler := handler.NewChartHandler(chartService)
	adminHandler := handler.NewAdminHandler(repo)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	charts := r.Group("/chart", limiter.Middleware())
	{
		charts.GET("/:user", chartHandler.GetChart)
	}

	admin := r.Group("/api/v1/admin", middleware.Auth(cfg.JWTSecret))
	{
		admin.POST("/cache/purge", adminHandler.PurgeCache)
	}

	return r
}
