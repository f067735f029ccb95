package model

// HourlyReading is one synthesized hour of a device's day. Predicted is not
// floored at zero: when the model noise dominates a small actual value it can
// go negative, which the consumption chart renders as-is.
type HourlyReading struct {
	Hour      string  `json:"hour"` // "00:00".."23:00"
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
	Cost      float64 `json:"cost"`
}
