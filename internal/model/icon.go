package model

// DefaultIcon is used when a device is created without a recognized icon.
const DefaultIcon = "zap"

// knownIcons is the closed set of icon identifiers the dashboard can render.
var knownIcons = map[string]struct{}{
	"thermometer":  {},
	"lightbulb":    {},
	"refrigerator": {},
	"wind":         {},
	"gamepad-2":    {},
	"zap":          {},
	"tv":           {},
	"washer":       {},
	"plug":         {},
}

// NormalizeIcon maps an arbitrary icon label onto the closed icon set,
// falling back to DefaultIcon for unknown names.
func NormalizeIcon(name string) string {
	if _, ok := knownIcons[name]; ok {
		return name
	}
	return DefaultIcon
}
