package utils

import "math"

// Demand levels.
const (
	DemandLow    = "Low"
	DemandMedium = "Medium"
	DemandHigh   = "High"
)

// Badge variants used to colour the demand level.
const (
	TierDestructive = "destructive"
	TierSecondary   = "secondary"
	TierDefault     = "default"
)

// Demand thresholds, applied to the rounded prediction.
const (
	MediumDemandFrom = 50
	HighDemandFrom   = 150
)

// DemandDisplay is what the result card shows for a prediction.
type DemandDisplay struct {
	Prediction float64 `json:"prediction"`
	Rounded    int     `json:"rounded"`
	Level      string  `json:"level"`
	Tier       string  `json:"tier"`
}

// Display maps a prediction to its rounded value and demand level.
// Ties round half away from zero, so 149.5 becomes 150 (High).
// Rounded saturates at the int range; the level is taken from the unclamped value.
func Display(prediction float64) DemandDisplay {
	rounded := math.Round(prediction)

	d := DemandDisplay{Prediction: prediction, Rounded: clampToInt(rounded)}
	switch {
	case rounded < MediumDemandFrom:
		d.Level, d.Tier = DemandLow, TierDestructive
	case rounded < HighDemandFrom:
		d.Level, d.Tier = DemandMedium, TierSecondary
	default:
		d.Level, d.Tier = DemandHigh, TierDefault
	}
	return d
}

func clampToInt(v float64) int {
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}
