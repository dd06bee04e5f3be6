package ui

import (
	"fmt"
	"math"

	"lowtter/internal/core"
)

// Captions shown by the overlay.
const (
	Title       = "LOWTTER"
	Subtitle    = "SCROLL TO REACH THE CORE"
	Welcome     = "WELCOME TO Lowtter"
	LoadingText = "Entering LOWTTER-Planet..."
)

// FadeAlpha returns the opacity of the welcome caption at elapsed seconds.
// It ping-pongs linearly between 0.4 and 1 once per second.
func FadeAlpha(elapsed float64) float64 {
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}
	phase := math.Mod(elapsed, 2)
	if phase > 1 {
		phase = 2 - phase
	}
	return 0.4 + 0.6*phase
}

// FormatSnapshot renders parameter groups as HUD lines.
func FormatSnapshot(snap core.ParameterSnapshot) []string {
	var lines []string
	for gi, g := range snap.Groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-14s %s", p.Label, p.Value))
		}
	}
	return lines
}
