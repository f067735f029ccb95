package store

import (
	"github.com/google/uuid"

	"energy-dashboard-backend/internal/model"
)

// seedDevices returns the example household catalog the dashboard starts
// with. Ids are freshly generated per session; everything else is fixed.
func seedDevices() []model.Device {
	return []model.Device{
		{
			ID:           uuid.NewString(),
			Name:         "Smart Thermostat",
			Icon:         "thermometer",
			Status:       model.StatusOnline,
			CurrentUsage: 2.3,
			DailyUsage:   18.5,
			Efficiency:   87,
			Category:     model.CategoryHeating,
			Location:     "Living Room",
			Alerts:       model.AlertConfig{Enabled: true, Threshold: 25, Type: model.AlertUsage},
		},
		{
			ID:           uuid.NewString(),
			Name:         "LED Light System",
			Icon:         "lightbulb",
			Status:       model.StatusOnline,
			CurrentUsage: 0.8,
			DailyUsage:   6.2,
			Efficiency:   92,
			Category:     model.CategoryLighting,
			Location:     "Kitchen",
			Alerts:       model.AlertConfig{Enabled: true, Threshold: 10, Type: model.AlertAnomaly},
		},
		{
			ID:           uuid.NewString(),
			Name:         "Energy Star Refrigerator",
			Icon:         "refrigerator",
			Status:       model.StatusOnline,
			CurrentUsage: 1.2,
			DailyUsage:   28.8,
			Efficiency:   85,
			Category:     model.CategoryAppliance,
			Location:     "Kitchen",
			Alerts:       model.AlertConfig{Enabled: false, Threshold: 35, Type: model.AlertEfficiency},
		},
		{
			ID:           uuid.NewString(),
			Name:         "Smart AC Unit",
			Icon:         "wind",
			Status:       model.StatusIdle,
			CurrentUsage: 0.0,
			DailyUsage:   45.2,
			Efficiency:   78,
			Category:     model.CategoryCooling,
			Location:     "Master Bedroom",
			Alerts:       model.AlertConfig{Enabled: true, Threshold: 50, Type: model.AlertUsage},
		},
		{
			ID:           uuid.NewString(),
			Name:         "Gaming Console",
			Icon:         "gamepad-2",
			Status:       model.StatusOffline,
			CurrentUsage: 0.0,
			DailyUsage:   12.3,
			Efficiency:   65,
			Category:     model.CategoryEntertainment,
			Location:     "Living Room",
			Alerts:       model.AlertConfig{Enabled: true, Threshold: 15, Type: model.AlertUsage},
		},
	}
}
