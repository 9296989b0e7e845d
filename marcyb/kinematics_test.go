package marcyb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Expected values match the unit tests of the Python implementation.
func Test_transform_to_pipi_positive(t *testing.T) {
	outputAngle, revolutions := TransformToPipi(4.0)

	assert.InDelta(t, -2.28, outputAngle, 0.01)
	assert.Equal(t, 1, revolutions)
}

func Test_transform_to_pipi_negative(t *testing.T) {
	outputAngle, revolutions := TransformToPipi(-4.0)

	assert.InDelta(t, 2.28, outputAngle, 0.01)
	assert.Equal(t, -1, revolutions)
}

func Test_transform_to_pipi(t *testing.T) {
	outputAngle, revolutions := TransformToPipi(0.0)
	assert.Equal(t, 0.0, outputAngle)
	assert.Equal(t, 0, revolutions)

	outputAngle, revolutions = TransformToPipi(7.0)
	assert.InDelta(t, 0.7168146928204138, outputAngle, 1e-12)
	assert.Equal(t, 1, revolutions)

	outputAngle, revolutions = TransformToPipi(100.0)
	assert.InDelta(t, -0.5309649148733762, outputAngle, 1e-12)
	assert.Equal(t, 16, revolutions)

	outputAngle, revolutions = TransformToPipi(-100.0)
	assert.InDelta(t, 0.5309649148733762, outputAngle, 1e-12)
	assert.Equal(t, -16, revolutions)
}

func Test_truncated_remainder(t *testing.T) {
	assert.Equal(t, 1.0, TruncatedRemainder(5.0, 2.0))
	assert.Equal(t, -1.0, TruncatedRemainder(-5.0, 2.0))
	assert.Equal(t, 1.5, TruncatedRemainder(5.5, 2.0))
	assert.Equal(t, -1.5, TruncatedRemainder(-5.5, 2.0))
}

func Test_rotate_NED_to_BODY(t *testing.T) {
	coordsNED := mat.NewVecDense(3, []float64{1.0, 0.0, math.Pi / 2})

	coordsBODY := RotateNEDToBODY(coordsNED)

	assert.InDelta(t, 0.0, coordsBODY.AtVec(0), 1e-12)
	assert.InDelta(t, -1.0, coordsBODY.AtVec(1), 1e-12)
	assert.InDelta(t, math.Pi/2, coordsBODY.AtVec(2), 1e-12)
}

// BODY -> NED is the inverse rotation: a round trip recovers the input.
func Test_rotate_round_trip(t *testing.T) {
	coordsNED := mat.NewVecDense(3, []float64{3.2, -1.7, 0.8})

	back := RotateBODYToNED(RotateNEDToBODY(coordsNED))

	for i := 0; i < 3; i++ {
		assert.InDelta(t, coordsNED.AtVec(i), back.AtVec(i), 1e-12)
	}
}
