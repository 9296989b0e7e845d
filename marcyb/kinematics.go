package marcyb

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//--------------------------------------
// Kinematics: angle and reference frame transformations
//--------------------------------------

// TransformToPipi transforms an angle [rad] to the interval (-pi, pi],
// and returns the number of whole revolutions in the input.
func TransformToPipi(inputAngle float64) (outputAngle float64, revolutions int) {
	twoPi := 2 * math.Pi

	revolutions = int((inputAngle + sign(inputAngle)*math.Pi) / twoPi)

	p1 := TruncatedRemainder(inputAngle+sign(inputAngle)*math.Pi, twoPi)
	p2 := sign(sign(inputAngle)+
		2*(sign(math.Abs(TruncatedRemainder(inputAngle+math.Pi, twoPi)/twoPi))-1)) * math.Pi

	outputAngle = p1 - p2

	return outputAngle, revolutions
}

// TruncatedRemainder is the remainder of a division with the same sign as
// the dividend. Go's math.Mod already truncates toward zero, but the
// explicit form mirrors the reference implementation.
func TruncatedRemainder(dividend, divisor float64) float64 {
	dividedNumber := math.Trunc(dividend / divisor)
	return dividend - divisor*dividedNumber
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// RotateNEDToBODY rotates coordinates from NED to BODY (surge, sway, yaw).
// The third element of the coordinate vector is the yaw angle [rad].
//
// Assumes small roll and pitch angles.
func RotateNEDToBODY(coordsNED *mat.VecDense) *mat.VecDense {
	phi := coordsNED.AtVec(2)
	rotationMatrix := mat.NewDense(3, 3, []float64{
		math.Cos(phi), math.Sin(phi), 0,
		-math.Sin(phi), math.Cos(phi), 0,
		0, 0, 1,
	})

	coordsBODY := mat.NewVecDense(3, nil)
	coordsBODY.MulVec(rotationMatrix, coordsNED)

	return coordsBODY
}

// RotateBODYToNED rotates coordinates from BODY to NED. The third element
// of the coordinate vector is the yaw angle [rad].
//
// Assumes small roll and pitch angles.
func RotateBODYToNED(coordsBODY *mat.VecDense) *mat.VecDense {
	phi := coordsBODY.AtVec(2)
	rotationMatrix := mat.NewDense(3, 3, []float64{
		math.Cos(phi), -math.Sin(phi), 0,
		math.Sin(phi), math.Cos(phi), 0,
		0, 0, 1,
	})

	coordsNED := mat.NewVecDense(3, nil)
	coordsNED.MulVec(rotationMatrix, coordsBODY)

	return coordsNED
}
