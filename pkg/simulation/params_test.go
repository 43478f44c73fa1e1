package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParametersValidate(t *testing.T) {
	assert.NoError(t, DefaultParameters().Validate())
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	p := DefaultParameters()
	p.Voltage = 1000
	err := p.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "voltage")

	p = DefaultParameters()
	p.SparkGap = 0
	err = p.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sparkGap")
}

func TestDutyCycle(t *testing.T) {
	p := ProcessParameters{PulseOnTime: 10, PulseOffTime: 30}
	assert.InDelta(t, 0.25, p.dutyCycle(), 1e-10)

	assert.Equal(t, 0.0, ProcessParameters{}.dutyCycle())
}
