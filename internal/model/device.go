package model

// DeviceCategory classifies a monitored appliance.
type DeviceCategory string

const (
	CategoryHeating       DeviceCategory = "heating"
	CategoryCooling       DeviceCategory = "cooling"
	CategoryLighting      DeviceCategory = "lighting"
	CategoryAppliance     DeviceCategory = "appliance"
	CategoryEntertainment DeviceCategory = "entertainment"
)

// Valid reports whether c is one of the recognized categories.
func (c DeviceCategory) Valid() bool {
	switch c {
	case CategoryHeating, CategoryCooling, CategoryLighting, CategoryAppliance, CategoryEntertainment:
		return true
	}
	return false
}

// DeviceStatus is the connectivity state of a device.
type DeviceStatus string

const (
	StatusOnline  DeviceStatus = "online"
	StatusOffline DeviceStatus = "offline"
	StatusIdle    DeviceStatus = "idle"
)

// AlertType selects which device attribute an alert threshold applies to.
type AlertType string

const (
	AlertUsage      AlertType = "usage"
	AlertAnomaly    AlertType = "anomaly"
	AlertEfficiency AlertType = "efficiency"
)

// AlertConfig holds a device's alerting settings.
type AlertConfig struct {
	Enabled   bool      `json:"enabled"`
	Threshold float64   `json:"threshold"`
	Type      AlertType `json:"type"`
}

// Device is one monitored appliance. The ID is assigned by the store and is
// immutable after creation.
type Device struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Icon         string         `json:"icon"`
	Status       DeviceStatus   `json:"status"`
	CurrentUsage float64        `json:"currentUsage"` // kW
	DailyUsage   float64        `json:"dailyUsage"`   // kWh
	Efficiency   int            `json:"efficiency"`   // percentage
	Category     DeviceCategory `json:"category"`
	Location     string         `json:"location"`
	Alerts       AlertConfig    `json:"alerts"`
}
