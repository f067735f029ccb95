// Package alerts evaluates device alert configurations and hands triggered
// alerts to the notification worker pool.
package alerts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/notification"
	"energy-dashboard-backend/internal/store"
)

// Dispatcher is the piece of the worker pool the monitor needs.
type Dispatcher interface {
	Dispatch(job notification.Job)
}

// Monitor periodically checks every device against its alert config. Alerts
// are edge-triggered: once a device has fired it stays silent until its
// condition clears, so subscribers are not re-notified every tick.
type Monitor struct {
	store    *store.Store
	pool     Dispatcher
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	tripped map[string]bool // device id -> alert currently firing
}

// NewMonitor creates a Monitor over the given store.
func NewMonitor(s *store.Store, pool Dispatcher, interval time.Duration, log zerolog.Logger) *Monitor {
	return &Monitor{
		store:    s,
		pool:     pool,
		interval: interval,
		log:      log,
		tripped:  make(map[string]bool),
	}
}

// Run evaluates immediately and then on every tick until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	m.log.Info().Dur("interval", m.interval).Msg("starting alert monitor")

	m.EvaluateOnce()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info().Msg("alert monitor shutting down")
			return
		case <-ticker.C:
			m.EvaluateOnce()
		}
	}
}

// EvaluateOnce runs a single evaluation pass over the fleet.
func (m *Monitor) EvaluateOnce() {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]bool)
	for _, d := range m.store.Devices() {
		seen[d.ID] = true

		firing, reason := evaluate(d)
		if firing && !m.tripped[d.ID] {
			m.log.Info().Str("device_id", d.ID).Str("device", d.Name).Str("reason", reason).Msg("alert triggered")
			m.pool.Dispatch(notification.Job{
				DeviceID: d.ID,
				Message:  fmt.Sprintf("%s triggered a %s alert", d.Name, d.Alerts.Type),
			})
		}
		m.tripped[d.ID] = firing
	}

	// Forget devices that were removed so a re-added id starts clean.
	for id := range m.tripped {
		if !seen[id] {
			delete(m.tripped, id)
		}
	}
}

// evaluate reports whether the device's alert condition currently holds.
func evaluate(d model.Device) (bool, string) {
	if !d.Alerts.Enabled {
		return false, ""
	}

	switch d.Alerts.Type {
	case model.AlertUsage:
		if d.DailyUsage >= d.Alerts.Threshold {
			return true, fmt.Sprintf("daily usage %.1f kWh at or above threshold %.1f", d.DailyUsage, d.Alerts.Threshold)
		}
	case model.AlertAnomaly:
		if d.CurrentUsage >= d.Alerts.Threshold {
			return true, fmt.Sprintf("current draw %.1f kW at or above threshold %.1f", d.CurrentUsage, d.Alerts.Threshold)
		}
	case model.AlertEfficiency:
		if float64(d.Efficiency) <= d.Alerts.Threshold {
			return true, fmt.Sprintf("efficiency %d%% at or below threshold %.0f", d.Efficiency, d.Alerts.Threshold)
		}
	}
	return false, ""
}
