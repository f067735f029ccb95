// Package recommend derives energy-saving recommendations from device state.
// The engine is a fixed rule lookup table: impact figures are constants, not
// fitted to the device's actual consumption.
package recommend

import (
	"fmt"

	"github.com/google/uuid"

	"energy-dashboard-backend/internal/model"
)

const lowEfficiencyThreshold = 80

// Evaluate runs the rule set over every device and returns the resulting
// recommendations. It has no side effects on the devices, and each rule fires
// at most once per device per pass. The result is additive: Evaluate does not
// consult previously generated recommendations, so re-running it over an
// unchanged fleet duplicates them. Callers that want a one-shot seed must
// call it exactly once.
func Evaluate(devices []model.Device) []model.Recommendation {
	var recs []model.Recommendation

	for _, d := range devices {
		if d.Efficiency < lowEfficiencyThreshold {
			recs = append(recs, model.Recommendation{
				ID:          uuid.NewString(),
				DeviceID:    d.ID,
				Type:        model.RecommendationUpgrade,
				Title:       "Upgrade to Energy Star Model",
				Description: fmt.Sprintf("Replace %s with a more efficient model to reduce consumption by up to 25%%.", d.Name),
				Impact:      model.Impact{CostSavings: 45.50, CarbonSavings: 12.3, EfficiencyGain: 25},
				Actionable:  true,
				Priority:    model.PriorityHigh,
			})
		}

		if d.Category == model.CategoryHeating || d.Category == model.CategoryCooling {
			recs = append(recs, model.Recommendation{
				ID:          uuid.NewString(),
				DeviceID:    d.ID,
				Type:        model.RecommendationSchedule,
				Title:       "Optimize Temperature Schedule",
				Description: fmt.Sprintf("Adjust %s to run more efficiently during off-peak hours.", d.Name),
				Impact:      model.Impact{CostSavings: 23.80, CarbonSavings: 8.7, EfficiencyGain: 15},
				Actionable:  true,
				Priority:    model.PriorityMedium,
			})
		}

		if d.Category == model.CategoryLighting {
			recs = append(recs, model.Recommendation{
				ID:          uuid.NewString(),
				DeviceID:    d.ID,
				Type:        model.RecommendationBehavior,
				Title:       "Motion-Activated Controls",
				Description: fmt.Sprintf("Install smart sensors for %s to automatically turn off when no one is present.", d.Name),
				Impact:      model.Impact{CostSavings: 18.20, CarbonSavings: 5.1, EfficiencyGain: 20},
				Actionable:  true,
				Priority:    model.PriorityMedium,
			})
		}
	}

	return recs
}
