// Package store is the single source of truth for the current device and
// recommendation collections and the selected-device pointer. It is an
// explicit session object created at startup and discarded at shutdown, not
// package-level state. A single mutex serializes mutations because the store
// sits behind concurrent HTTP handlers.
package store

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/recommend"
)

// CreateDeviceInput is the caller-supplied portion of a new device. The store
// fills in the id, status, usage figures and alert defaults.
type CreateDeviceInput struct {
	Name     string               `json:"name" binding:"required"`
	Location string               `json:"location" binding:"required"`
	Category model.DeviceCategory `json:"category"`
	Icon     string               `json:"icon"`
}

// Store holds the in-memory device and recommendation collections.
type Store struct {
	mu              sync.RWMutex
	rng             *rand.Rand
	devices         []model.Device // insertion order is the display order
	recommendations []model.Recommendation
	selectedID      string // empty means no device detail view is active
}

// New creates an empty store drawing random device stats from rng.
func New(rng *rand.Rand) *Store {
	return &Store{rng: rng}
}

// NewSeeded creates a store pre-populated with the example device catalog and
// one rule-engine pass over it.
func NewSeeded(rng *rand.Rand) *Store {
	s := New(rng)
	s.devices = seedDevices()
	s.recommendations = recommend.Evaluate(s.devices)
	return s
}

// Devices returns a copy of the device collection in insertion order.
func (s *Store) Devices() []model.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// Device returns the device with the given id.
func (s *Store) Device(id string) (model.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.devices {
		if d.ID == id {
			return d, nil
		}
	}
	return model.Device{}, fmt.Errorf("device %q: %w", id, model.ErrNotFound)
}

// AddDevice validates input, assigns a fresh id and randomized starting
// stats, and appends the device to the collection.
func (s *Store) AddDevice(input CreateDeviceInput) (model.Device, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Device{}, fmt.Errorf("name is required: %w", model.ErrValidation)
	}
	if strings.TrimSpace(input.Location) == "" {
		return model.Device{}, fmt.Errorf("location is required: %w", model.ErrValidation)
	}
	if !input.Category.Valid() {
		return model.Device{}, fmt.Errorf("unknown category %q: %w", input.Category, model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := model.Device{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Icon:         model.NormalizeIcon(input.Icon),
		Status:       model.StatusOnline,
		CurrentUsage: s.rng.Float64() * 3,
		DailyUsage:   s.rng.Float64() * 50,
		Efficiency:   60 + s.rng.Intn(40),
		Category:     input.Category,
		Location:     input.Location,
		Alerts: model.AlertConfig{
			Enabled:   false,
			Threshold: 25,
			Type:      model.AlertUsage,
		},
	}
	s.devices = append(s.devices, d)
	return d, nil
}

// RemoveDevice deletes the device with the given id, clearing the selection
// if it pointed at the removed device. Unknown ids are a no-op. The device's
// recommendations are deliberately left in place with a now-dangling device
// reference; consumers must check device existence before dereferencing.
func (s *Store) RemoveDevice(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.devices {
		if d.ID == id {
			s.devices = append(s.devices[:i], s.devices[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
			}
			return
		}
	}
}

// UpdateDevice replaces the stored device with the same id. This is a full
// replacement, not a partial patch, except that the id itself is immutable.
// Values violating the field invariants are rejected; unknown ids are a
// no-op. When the selected device is updated the selection observes the new
// value automatically since it is tracked by id.
func (s *Store) UpdateDevice(updated model.Device) error {
	if err := validateDevice(updated); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.devices {
		if d.ID == updated.ID {
			s.devices[i] = updated
			return nil
		}
	}
	return nil
}

func validateDevice(d model.Device) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required: %w", model.ErrValidation)
	}
	if strings.TrimSpace(d.Location) == "" {
		return fmt.Errorf("location is required: %w", model.ErrValidation)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", d.Category, model.ErrValidation)
	}
	if d.CurrentUsage < 0 || d.DailyUsage < 0 {
		return fmt.Errorf("usage must be non-negative: %w", model.ErrValidation)
	}
	if d.Efficiency < 0 || d.Efficiency > 100 {
		return fmt.Errorf("efficiency must be within [0,100]: %w", model.ErrValidation)
	}
	return nil
}

// Recommendations returns a copy of the recommendation collection.
func (s *Store) Recommendations() []model.Recommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Recommendation, len(s.recommendations))
	copy(out, s.recommendations)
	return out
}

// ApplyRecommendation marks the recommendation as applied. The transition is
// one-way and idempotent; unknown ids are a no-op.
func (s *Store) ApplyRecommendation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recommendations {
		if s.recommendations[i].ID == id {
			s.recommendations[i].Applied = true
			return
		}
	}
}

// RefreshRecommendations re-runs the rule engine over the current fleet and
// appends the results. The engine does not deduplicate against earlier
// passes, so refreshing an unchanged fleet duplicates its recommendations;
// the seeded one-shot pass at construction is the normal usage.
func (s *Store) RefreshRecommendations() []model.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := recommend.Evaluate(s.devices)
	s.recommendations = append(s.recommendations, fresh...)
	return fresh
}

// SelectDevice points the selection at the device with the given id.
func (s *Store) SelectDevice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.devices {
		if d.ID == id {
			s.selectedID = id
			return nil
		}
	}
	return fmt.Errorf("device %q: %w", id, model.ErrNotFound)
}

// ClearSelection drops the selected-device pointer.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
}

// SelectedDevice returns the currently selected device, if any.
func (s *Store) SelectedDevice() (model.Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedID == "" {
		return model.Device{}, false
	}
	for _, d := range s.devices {
		if d.ID == s.selectedID {
			return d, true
		}
	}
	return model.Device{}, false
}
