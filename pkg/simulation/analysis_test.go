package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/slicer"
)

func TestAnalyzeDerivedMetrics(t *testing.T) {
	result, err := Parse(objCube(20, 0), "cube.obj", Options{})
	require.NoError(t, err)

	params := DefaultParameters()
	metrics := Analyze(result, params)

	expectedMRR := removalRateFactor * params.Voltage * params.Current * params.dutyCycle()
	assert.InDelta(t, expectedMRR, metrics.MaterialRemovalRate, 1e-9)
	assert.InDelta(t, result.Metadata.Volume/expectedMRR, metrics.EstimatedCutTime, 1e-9)
	assert.Equal(t, len(result.CuttingPaths), metrics.ContourCount)
	assert.InDelta(t, float64(metrics.ContourCount)*wirePerContour, metrics.WireConsumption, 1e-9)
	assert.Greater(t, metrics.TotalPathLength, 0.0)
}

func TestAnalyzeZeroRemovalRate(t *testing.T) {
	result := &Result{CuttingPaths: []slicer.Contour{}}
	params := ProcessParameters{} // all zeros: duty cycle 0
	metrics := Analyze(result, params)

	assert.Equal(t, 0.0, metrics.MaterialRemovalRate)
	assert.Equal(t, 0.0, metrics.EstimatedCutTime)
	assert.Equal(t, 0, metrics.ContourCount)
}

func TestContoursShown(t *testing.T) {
	cases := []struct {
		progress float64
		total    int
		want     int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{100, 20, 20},
		{37, 20, 7},  // floor(0.37 * 20) = 7
		{120, 20, 20},
		{-5, 20, 0},
		{50, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ContoursShown(tc.progress, tc.total),
			"progress=%g total=%d", tc.progress, tc.total)
	}
}
