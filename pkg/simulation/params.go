package simulation

import "fmt"

// ProcessParameters are the wire-EDM machine settings. Every field is
// explicit; the UI sliders map 1:1 onto this struct.
type ProcessParameters struct {
	Voltage        float64 `json:"voltage"`        // gap voltage, V
	Current        float64 `json:"current"`        // discharge current, A
	PulseOnTime    float64 `json:"pulseOnTime"`    // µs
	PulseOffTime   float64 `json:"pulseOffTime"`   // µs
	WireSpeed      float64 `json:"wireSpeed"`      // wire feed, mm/s
	DielectricFlow float64 `json:"dielectricFlow"` // flushing rate, L/min
	WireOffset     float64 `json:"wireOffset"`     // path compensation, mm
	SparkGap       float64 `json:"sparkGap"`       // mm
}

// parameterRange is an inclusive slider range.
type parameterRange struct {
	name     string
	min, max float64
}

var parameterRanges = []parameterRange{
	{"voltage", 30, 300},
	{"current", 0.5, 30},
	{"pulseOnTime", 0.5, 50},
	{"pulseOffTime", 1, 100},
	{"wireSpeed", 10, 300},
	{"dielectricFlow", 1, 20},
	{"wireOffset", 0.05, 0.5},
	{"sparkGap", 0.01, 0.1},
}

// DefaultParameters returns mid-range machine settings.
func DefaultParameters() ProcessParameters {
	return ProcessParameters{
		Voltage:        120,
		Current:        8,
		PulseOnTime:    12,
		PulseOffTime:   45,
		WireSpeed:      120,
		DielectricFlow: 8,
		WireOffset:     0.18,
		SparkGap:       0.035,
	}
}

// Validate range-checks every parameter and reports the first field out
// of its slider range.
func (p ProcessParameters) Validate() error {
	values := []float64{
		p.Voltage, p.Current, p.PulseOnTime, p.PulseOffTime,
		p.WireSpeed, p.DielectricFlow, p.WireOffset, p.SparkGap,
	}
	for i, r := range parameterRanges {
		if values[i] < r.min || values[i] > r.max {
			return fmt.Errorf("parameter %s = %g outside range [%g, %g]", r.name, values[i], r.min, r.max)
		}
	}
	return nil
}

// dutyCycle is the fraction of each pulse period spent discharging.
func (p ProcessParameters) dutyCycle() float64 {
	period := p.PulseOnTime + p.PulseOffTime
	if period == 0 {
		return 0
	}
	return p.PulseOnTime / period
}
