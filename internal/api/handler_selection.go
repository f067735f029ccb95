package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type putSelectionRequest struct {
	// DeviceID null or empty closes the device detail view.
	DeviceID *string `json:"device_id"`
}

// PutSelection handles PUT /api/selection.
func (h *Handler) PutSelection(c *gin.Context) {
	var req putSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DeviceID == nil || *req.DeviceID == "" {
		h.store.ClearSelection()
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.store.SelectDevice(*req.DeviceID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSelection handles GET /api/selection.
func (h *Handler) GetSelection(c *gin.Context) {
	d, ok := h.store.SelectedDevice()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": d})
}
