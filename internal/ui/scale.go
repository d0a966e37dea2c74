package ui

import "math"

// Band is a severity tier derived from a percentage. It drives the color of
// bars and graph columns.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// String returns a human-readable band name.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMedium:
		return "medium"
	case BandHigh:
		return "high"
	default:
		return "low"
	}
}

// bandThresholds enumerates the severity tiers from most to least severe.
// A percent belongs to the first tier whose lower bound it passes; strict
// marks an exclusive bound. The table is exhaustive over [0,100]:
// low = [0,60), medium = [60,85], high = (85,100].
var bandThresholds = []struct {
	band   Band
	min    float64
	strict bool
}{
	{BandHigh, 85, true},
	{BandMedium, 60, false},
	{BandLow, 0, false},
}

// ColorBand maps a percentage onto its severity band. Every value maps to
// exactly one band; 60.0 is medium and 85.0 is medium.
func ColorBand(percent float64) Band {
	percent = clampPercent(percent)
	for _, t := range bandThresholds {
		if percent > t.min || (!t.strict && percent == t.min) {
			return t.band
		}
	}
	return BandLow
}

// ScaleBar quantizes a percentage onto a bar of width cells. 0 maps to 0
// cells and 100 maps to exactly width cells; the mapping is monotonic.
func ScaleBar(percent float64, width int) int {
	if width <= 0 {
		return 0
	}
	return int(math.Round(clampPercent(percent) / 100 * float64(width)))
}

// ScaleGraph quantizes a percentage onto a graph column of height rows,
// with the same rounding and endpoint behavior as ScaleBar.
func ScaleGraph(percent float64, height int) int {
	return ScaleBar(percent, height)
}

// clampPercent pins a value into [0,100]. Callers are expected to pass
// clamped values already; this keeps out-of-range input from ever reaching
// the visual layer.
func clampPercent(p float64) float64 {
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
