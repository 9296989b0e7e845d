package marcyb

import (
	"math"
)

//--------------------------------------
// Wind force and moment calculation
//--------------------------------------

// WindOptions are the optional parameters of the wind force calculation,
// with their documented defaults in DefaultWindOptions.
type WindOptions struct {
	Temperature      float64 // air temperature [°C]
	VesselHeading    float64 // vessel heading [rad]
	VesselSpeedSurge float64 // vessel speed in surge [m/s]
	VesselSpeedSway  float64 // vessel speed in sway [m/s]
}

// DefaultWindOptions returns the default optional parameters:
// 20.0 °C, heading 0.0 rad, vessel at rest.
func DefaultWindOptions() WindOptions {
	return WindOptions{Temperature: 20.0}
}

// Forces is a wind force and moment acting on the vessel.
type Forces struct {
	Surge float64 // wind force in surge [kN]
	Sway  float64 // wind force in sway [kN]
	Yaw   float64 // wind moment in yaw [kNm]
}

// CalculateRhoW calculates the density of air from temperature. Polynomial
// regression done on a table of air density vs. temperature values.
//
// Args:
//
//	temperature: the air temperature [°C]
//
// Returns:
//
//	the density of air [kg/m³]
func CalculateRhoW(temperature float64) float64 {
	T := temperature
	return 3.318e-12*math.Pow(T, 5) + 1.172e-10*math.Pow(T, 4) -
		6.845e-8*math.Pow(T, 3) + 1.744e-5*math.Pow(T, 2) -
		4.728e-3*T + 1.292
}

// WindForcesAndMoment returns the wind force (surge and sway) and moment
// (yaw) acting on the vessel.
//
// Args:
//
//	windSpeed:     wind speed [m/s]
//	windDirection: wind direction [rad]
//	geom:          the vessel geometry
//	coeffs:        how to determine the wind coefficients
//	opt:           optional parameters, see DefaultWindOptions
//
// Errors from the coefficient model (unknown vessel type, missing or
// invalid geometry) propagate unchanged.
func WindForcesAndMoment(windSpeed float64, windDirection float64, geom VesselGeometry, coeffs CoefficientType, opt WindOptions) (Forces, error) {
	rho_w := CalculateRhoW(opt.Temperature)

	// Relative velocities.
	windSpeedSurge := windSpeed * math.Cos(windDirection-opt.VesselHeading)
	windSpeedSway := windSpeed * math.Sin(windDirection-opt.VesselHeading)
	relativeVelocitySurge := opt.VesselSpeedSurge - windSpeedSurge
	relativeVelocitySway := opt.VesselSpeedSway - windSpeedSway
	relativeWindSpeed := math.Hypot(relativeVelocitySurge, relativeVelocitySway)

	// The wind is coming from the angle of attack.
	angleOfAttack := math.Atan2(relativeVelocitySway, relativeVelocitySurge) + math.Pi

	C_X, C_Y, C_N, err := WindCoefficients(coeffs, geom, angleOfAttack)
	if err != nil {
		return Forces{}, err
	}

	q := 0.5 * rho_w * relativeWindSpeed * relativeWindSpeed

	return Forces{
		Surge: 1e-3 * q * C_X * geom.FrontalArea,
		Sway:  1e-3 * q * C_Y * geom.LateralArea,
		Yaw:   1e-3 * q * C_N * geom.LateralArea * geom.Loa,
	}, nil
}

// CoefficientRecord is one point of a wind coefficient sweep.
type CoefficientRecord struct {
	AngleDeg float64
	C_X      float64
	C_Y      float64
	C_N      float64
}

// ForceRecord is one point of a wind force sweep.
type ForceRecord struct {
	WindDirectionDeg float64
	Surge            float64 // [kN]
	Sway             float64 // [kN]
	Yaw              float64 // [kNm]
}

// SweepWindCoefficients evaluates the wind coefficients over a range of
// angles of attack [deg], typically 0–180. Every evaluation is independent.
func SweepWindCoefficients(coeffs CoefficientType, geom VesselGeometry, startDeg, stopDeg, stepDeg float64) ([]CoefficientRecord, error) {
	angles := arange(startDeg, stopDeg, stepDeg)
	records := make([]CoefficientRecord, len(angles))

	for i, angleDeg := range angles {
		angleRad := angleDeg * math.Pi / 180.0
		C_X, C_Y, C_N, err := WindCoefficients(coeffs, geom, angleRad)
		if err != nil {
			return nil, err
		}
		records[i] = CoefficientRecord{AngleDeg: angleDeg, C_X: C_X, C_Y: C_Y, C_N: C_N}
	}

	return records, nil
}

// SweepWindForces evaluates the wind forces and moment over a range of wind
// directions [deg], typically 0–360, at a fixed wind speed.
func SweepWindForces(windSpeed float64, geom VesselGeometry, coeffs CoefficientType, opt WindOptions, startDeg, stopDeg, stepDeg float64) ([]ForceRecord, error) {
	directions := arange(startDeg, stopDeg, stepDeg)
	records := make([]ForceRecord, len(directions))

	for i, directionDeg := range directions {
		directionRad := directionDeg * math.Pi / 180.0
		forces, err := WindForcesAndMoment(windSpeed, directionRad, geom, coeffs, opt)
		if err != nil {
			return nil, err
		}
		records[i] = ForceRecord{
			WindDirectionDeg: directionDeg,
			Surge:            forces.Surge,
			Sway:             forces.Sway,
			Yaw:              forces.Yaw,
		}
	}

	return records, nil
}
