package model

// RecommendationType identifies the kind of energy-saving action suggested.
type RecommendationType string

const (
	RecommendationSchedule RecommendationType = "schedule"
	RecommendationSetting  RecommendationType = "setting"
	RecommendationUpgrade  RecommendationType = "upgrade"
	RecommendationBehavior RecommendationType = "behavior"
)

// Priority ranks how urgently a recommendation should be acted on.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Impact quantifies the estimated benefit of applying a recommendation.
type Impact struct {
	CostSavings    float64 `json:"costSavings"`
	CarbonSavings  float64 `json:"carbonSavings"`
	EfficiencyGain int     `json:"efficiency"`
}

// Recommendation is a suggested energy-saving action tied to a device.
// DeviceID is a weak reference: it may point at a device that has since been
// removed, so readers must check existence before dereferencing.
type Recommendation struct {
	ID          string             `json:"id"`
	DeviceID    string             `json:"deviceId"`
	Type        RecommendationType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Impact      Impact             `json:"impact"`
	Actionable  bool               `json:"actionable"`
	Applied     bool               `json:"applied"`
	Priority    Priority           `json:"priority"`
}
