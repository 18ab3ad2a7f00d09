package weather

import (
	"fmt"
	"strings"
)

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Report holds parsed current conditions for one location.
type Report struct {
	City        string
	Country     string
	Condition   string
	Description string
	Temp        float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	WindDeg     float64
	Units       string
}

// DegreesToDirection converts a wind bearing to a 16-point compass
// direction.
func DegreesToDirection(degrees float64) string {
	for degrees < 0 {
		degrees += 360
	}
	idx := int((degrees+11.25)/22.5) % len(compassPoints)
	return compassPoints[idx]
}

func (r *Report) tempUnit() string {
	if r.Units == "imperial" {
		return "°F"
	}
	return "°C"
}

func (r *Report) speedUnit() string {
	if r.Units == "imperial" {
		return "mph"
	}
	return "m/s"
}

// Format renders the report as a plain-text chat message.
func (r *Report) Format() string {
	var b strings.Builder
	location := r.City
	if r.Country != "" {
		location += ", " + r.Country
	}
	fmt.Fprintf(&b, "**Weather in %s**\n\n", location)
	fmt.Fprintf(&b, "**Conditions:** %s\n", r.Description)
	fmt.Fprintf(&b, "**Temperature:** %.1f%s (feels like %.1f%s)\n", r.Temp, r.tempUnit(), r.FeelsLike, r.tempUnit())
	fmt.Fprintf(&b, "**Humidity:** %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "**Wind:** %.1f %s %s", r.WindSpeed, r.speedUnit(), DegreesToDirection(r.WindDeg))
	return b.String()
}
