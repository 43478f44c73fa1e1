package simulation

import "math"

// Display-metric constants. These are illustrative throughput figures
// for the simulator's analytics panel, not machining physics.
const (
	// removalRateFactor converts discharge power (V·A, duty-scaled)
	// into a cubic-units-per-minute removal rate.
	removalRateFactor = 0.18
	// wirePerContour is meters of wire consumed per cutting contour.
	wirePerContour = 2.5
)

// ProcessMetrics are the derived figures the analytics panel shows for
// a parsed model under a given set of machine settings.
type ProcessMetrics struct {
	MaterialRemovalRate float64 `json:"materialRemovalRate"` // cubic units / min
	EstimatedCutTime    float64 `json:"estimatedCutTime"`    // minutes
	WireConsumption     float64 `json:"wireConsumption"`     // meters
	TotalPathLength     float64 `json:"totalPathLength"`     // units
	ContourCount        int     `json:"contourCount"`
}

// Analyze derives display metrics from a parse result and the current
// machine settings.
func Analyze(res *Result, p ProcessParameters) ProcessMetrics {
	mrr := removalRateFactor * p.Voltage * p.Current * p.dutyCycle()

	cutTime := 0.0
	if mrr > 0 {
		cutTime = res.Metadata.Volume / mrr
	}

	totalLength := 0.0
	for _, contour := range res.CuttingPaths {
		totalLength += contour.PathLength()
	}

	return ProcessMetrics{
		MaterialRemovalRate: mrr,
		EstimatedCutTime:    cutTime,
		WireConsumption:     float64(len(res.CuttingPaths)) * wirePerContour,
		TotalPathLength:     totalLength,
		ContourCount:        len(res.CuttingPaths),
	}
}

// ContoursShown maps a 0–100 cut-progress percentage onto how many
// contours the renderer reveals.
func ContoursShown(progress float64, contourCount int) int {
	if contourCount <= 0 {
		return 0
	}
	shown := int(math.Floor(progress / 100.0 * float64(contourCount)))
	if shown < 0 {
		return 0
	}
	if shown > contourCount {
		return contourCount
	}
	return shown
}
