package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// Subscriptions live in the in-memory sqlite registry; the devices they watch
// are held by the store, so the link is by device id rather than a foreign key.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey;size:512"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	Devices []DeviceSubscription `gorm:"foreignKey:Endpoint;references:Endpoint;constraint:OnDelete:CASCADE"`
}

// DeviceSubscription links a push subscription to one watched device.
type DeviceSubscription struct {
	Endpoint string `gorm:"primaryKey;size:512"`
	DeviceID string `gorm:"primaryKey;size:64;index"`
}
