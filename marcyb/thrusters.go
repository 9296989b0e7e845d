package marcyb

import (
	"fmt"
	"math"
)

//--------------------------------------
// Thruster power-to-force conversion
//--------------------------------------

const hpPerKw = 1.36332 // metric horsepower

// IMCAPowerToForce returns the maximum force a thruster can apply [kN],
// given the maximum power it can deliver [kW], according to the IMCA
// power-to-force relationship (see IMCA M 140).
//
// Args:
//
//	thrusterType:     type of thruster
//	maxPowerPositive: maximum power, positive direction [kW]
//	maxPowerNegative: maximum power, negative direction [kW]
//
// Returns:
//
//	maxForcePositive: maximum force, positive direction [kN]
//	maxForceNegative: maximum force, negative direction [kN]
func IMCAPowerToForce(thrusterType ThrusterType, maxPowerPositive, maxPowerNegative float64) (maxForcePositive, maxForceNegative float64, err error) {
	var conversionFactorPositive, conversionFactorNegative float64

	switch thrusterType {
	case Tunnel:
		conversionFactorPositive = 11.0e-3 * hpPerKw * grav
		conversionFactorNegative = -11.0e-3 * hpPerKw * grav
	case Azimuth:
		conversionFactorPositive = 13.0e-3 * hpPerKw * grav
		conversionFactorNegative = -8.0e-3 * hpPerKw * grav
	case Propeller:
		conversionFactorPositive = 13.0e-3 * hpPerKw * grav
		conversionFactorNegative = -0.7 * conversionFactorPositive
	case Waterjet:
		conversionFactorPositive = 8.0e-3 * hpPerKw * grav
		conversionFactorNegative = 0.0
	default:
		return 0, 0, fmt.Errorf("illegal thruster type %d", thrusterType)
	}

	maxForcePositive = conversionFactorPositive * maxPowerPositive
	maxForceNegative = conversionFactorNegative * maxPowerNegative

	return maxForcePositive, maxForceNegative, nil
}

// ABSCoandaEffect returns the thrust reduction ratio due to the Coanda
// effect, according to ABS.
func ABSCoandaEffect() float64 {
	return 0.97
}

// ABSInlineTandemCondition returns the thrust reduction ratio due to an
// in-line tandem condition, as defined by ABS.
//
// Args:
//
//	x:        distance between the thrusters [m]
//	diameter: diameter of the thruster in question [m]
func ABSInlineTandemCondition(x, diameter float64) float64 {
	return 1 - math.Pow(0.75, math.Pow(x/diameter, 2.0/3.0))
}
