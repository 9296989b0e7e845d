package marcyb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Expected values match the unit tests of the Python implementation.
func Test_imca_power_to_force_tunnel(t *testing.T) {
	maxForce, minForce, err := IMCAPowerToForce(Tunnel, 880.0, 880.0)

	assert.NoError(t, err)
	assert.InDelta(t, 129.46, maxForce, 0.01)
	assert.InDelta(t, -129.46, minForce, 0.01)
}

func Test_imca_power_to_force_azimuth(t *testing.T) {
	maxForce, minForce, err := IMCAPowerToForce(Azimuth, 2200.0, 2200.0)

	assert.NoError(t, err)
	assert.InDelta(t, 382.50, maxForce, 0.01)
	assert.InDelta(t, -235.39, minForce, 0.01)
}

func Test_imca_power_to_force_propeller(t *testing.T) {
	maxForce, minForce, err := IMCAPowerToForce(Propeller, 5000.0, 5000.0)

	assert.NoError(t, err)
	assert.InDelta(t, 869.32, maxForce, 0.01)
	assert.InDelta(t, -608.52, minForce, 0.01)
}

// A waterjet cannot produce reverse thrust.
func Test_imca_power_to_force_waterjet(t *testing.T) {
	maxForce, minForce, err := IMCAPowerToForce(Waterjet, 880.0, 880.0)

	assert.NoError(t, err)
	assert.InDelta(t, 94.15, maxForce, 0.01)
	assert.Equal(t, 0.0, minForce)
}

func Test_imca_power_to_force_illegal_type(t *testing.T) {
	_, _, err := IMCAPowerToForce(ThrusterType(42), 880.0, 880.0)

	assert.Error(t, err)
}

func Test_abs_coanda_effect(t *testing.T) {
	assert.Equal(t, 0.97, ABSCoandaEffect())
}

func Test_abs_inline_tandem_condition(t *testing.T) {
	assert.InDelta(t, 0.4737327917847999, ABSInlineTandemCondition(10.0, 3.0), 1e-9)
	assert.Equal(t, 0.0, ABSInlineTandemCondition(0.0, 3.0))
}
