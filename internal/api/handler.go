package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/simulate"
	"energy-dashboard-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     *store.Store
	generator *simulate.Generator
	db        *gorm.DB
	webpush   *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s *store.Store, g *simulate.Generator, db *gorm.DB, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:     s,
		generator: g,
		db:        db,
		webpush:   webpushOptions,
	}
}

// abortWithError maps the engine's sentinel errors onto HTTP statuses.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
