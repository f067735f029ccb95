package api

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-dashboard-backend/internal/analytics"
)

// GetHourlySeries handles GET /api/devices/:device_id/hourly. The synthesizer
// itself performs no lookup, but a series for an unknown device would label a
// chart nothing can open, so existence is checked here.
func (h *Handler) GetHourlySeries(c *gin.Context) {
	deviceID := c.Param("device_id")
	if _, err := h.store.Device(deviceID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deviceId": deviceID,
		"series":   h.generator.HourlySeries(),
	})
}

// deviceInsightsResponse mirrors the stat cards on the device detail view.
type deviceInsightsResponse struct {
	DeviceID     string  `json:"deviceId"`
	PeakUsage    float64 `json:"peakUsage"`    // kW
	AverageUsage float64 `json:"averageUsage"` // kW
	DailyCost    float64 `json:"dailyCost"`
	DailyCO2     float64 `json:"dailyCO2"` // kg
}

// GetDeviceInsights handles GET /api/devices/:device_id/insights.
func (h *Handler) GetDeviceInsights(c *gin.Context) {
	d, err := h.store.Device(c.Param("device_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	series := h.generator.HourlySeries()
	peak, err := analytics.PeakUsage(series)
	if err != nil {
		abortWithError(c, err)
		return
	}
	avg, err := analytics.AverageUsage(series)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, deviceInsightsResponse{
		DeviceID:     d.ID,
		PeakUsage:    peak,
		AverageUsage: avg,
		DailyCost:    analytics.DailyCost(series),
		DailyCO2:     analytics.DeviceCO2(d),
	})
}

// summaryResponse mirrors the dashboard stat cards.
type summaryResponse struct {
	TotalConsumption  float64  `json:"totalConsumption"`
	TotalCost         float64  `json:"totalCost"`
	TotalCO2          float64  `json:"totalCO2"`
	AverageEfficiency *float64 `json:"averageEfficiency"` // null for an empty fleet
	DeviceCount       int      `json:"deviceCount"`
}

// GetSummary handles GET /api/summary. The mean efficiency of an empty fleet
// is undefined, which JSON has no NaN for, so it is surfaced as null.
func (h *Handler) GetSummary(c *gin.Context) {
	devices := h.store.Devices()
	totals := analytics.FleetTotals(devices)

	var avg *float64
	if !math.IsNaN(totals.AverageEfficiency) {
		avg = &totals.AverageEfficiency
	}

	c.JSON(http.StatusOK, summaryResponse{
		TotalConsumption:  totals.TotalConsumption,
		TotalCost:         totals.TotalCost,
		TotalCO2:          totals.TotalCO2,
		AverageEfficiency: avg,
		DeviceCount:       len(devices),
	})
}
