package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/store"
)

// ListDevices handles GET /api/devices. It supports the dashboard's filter
// bar: ?category= narrows by category and ?q= matches name or location.
func (h *Handler) ListDevices(c *gin.Context) {
	devices := h.store.Devices()

	category := c.Query("category")
	query := strings.ToLower(c.Query("q"))

	filtered := make([]model.Device, 0, len(devices))
	for _, d := range devices {
		if category != "" && category != "all" && string(d.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(d.Name), query) &&
			!strings.Contains(strings.ToLower(d.Location), query) {
			continue
		}
		filtered = append(filtered, d)
	}

	c.JSON(http.StatusOK, filtered)
}

// CreateDevice handles POST /api/devices.
func (h *Handler) CreateDevice(c *gin.Context) {
	var input store.CreateDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.store.AddDevice(input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetDevice handles GET /api/devices/:device_id.
func (h *Handler) GetDevice(c *gin.Context) {
	d, err := h.store.Device(c.Param("device_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateDevice handles PUT /api/devices/:device_id. The body carries the full
// replacement device; the id in the path wins over any id in the body.
func (h *Handler) UpdateDevice(c *gin.Context) {
	var d model.Device
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.ID = c.Param("device_id")

	if err := h.store.UpdateDevice(d); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// RemoveDevice handles DELETE /api/devices/:device_id. Unknown ids are a
// no-op by design, so the response is 204 either way.
func (h *Handler) RemoveDevice(c *gin.Context) {
	h.store.RemoveDevice(c.Param("device_id"))
	c.Status(http.StatusNoContent)
}
