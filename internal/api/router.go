package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"energy-dashboard-backend/config"
	"energy-dashboard-backend/internal/mw"
	"energy-dashboard-backend/internal/simulate"
	"energy-dashboard-backend/internal/store"
)

// NewRouter creates and configures a new Gin router exposing the store,
// synthesizer and analytics to the dashboard frontend.
func NewRouter(cfg *config.Config, s *store.Store, g *simulate.Generator, db *gorm.DB, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, g, db, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/devices", handler.ListDevices)
		api.POST("/devices", handler.CreateDevice)
		api.GET("/devices/:device_id", handler.GetDevice)
		api.PUT("/devices/:device_id", handler.UpdateDevice)
		api.DELETE("/devices/:device_id", handler.RemoveDevice)

		// The hourly series is a fresh simulation per request and must not go
		// through the response cache.
		api.GET("/devices/:device_id/hourly", handler.GetHourlySeries)
		api.GET("/devices/:device_id/insights", handler.GetDeviceInsights)

		// The fleet summary tolerates a short staleness window.
		api.GET("/summary", caching, handler.GetSummary)

		api.GET("/recommendations", handler.ListRecommendations)
		api.POST("/recommendations/refresh", handler.RefreshRecommendations)
		api.POST("/recommendations/:recommendation_id/apply", handler.ApplyRecommendation)

		api.GET("/selection", handler.GetSelection)
		api.PUT("/selection", handler.PutSelection)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
