package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRecommendations handles GET /api/recommendations. Recommendations may
// reference devices that have since been removed; they are returned as-is and
// the frontend checks device existence before offering the apply action.
func (h *Handler) ListRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Recommendations())
}

// ApplyRecommendation handles POST /api/recommendations/:recommendation_id/apply.
// Applying is one-way and idempotent; unknown ids are a no-op by design.
func (h *Handler) ApplyRecommendation(c *gin.Context) {
	h.store.ApplyRecommendation(c.Param("recommendation_id"))
	c.Status(http.StatusNoContent)
}

// RefreshRecommendations handles POST /api/recommendations/refresh. The rule
// engine is additive: refreshing over an unchanged fleet duplicates earlier
// recommendations, so the frontend only offers this after device mutations.
func (h *Handler) RefreshRecommendations(c *gin.Context) {
	fresh := h.store.RefreshRecommendations()
	c.JSON(http.StatusOK, gin.H{"generated": len(fresh), "recommendations": fresh})
}
