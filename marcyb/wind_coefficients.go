package marcyb

import (
	"fmt"
	"math"
	"sort"
)

//--------------------------------------
// Wind coefficient calculation
//--------------------------------------

// BlendermannRow is one entry of Blendermann's coefficient table.
//
//	CDt:    transverse drag coefficient
//	CDl0:   longitudinal drag coefficient, wind on the bow
//	CDlPi:  longitudinal drag coefficient, wind on the stern
//	Delta:  cross-force parameter
//	Kappa:  rolling moment factor, carried for completeness but not used
//	        by the force calculation (from Fossen [2011])
type BlendermannRow struct {
	CDt   float64
	CDl0  float64
	CDlPi float64
	Delta float64
	Kappa float64
}

// Blendermann coefficients, per vessel type.
var blendermannTable = map[string]BlendermannRow{
	"Car carrier":                     {0.95, 0.55, 0.60, 0.80, 1.2},
	"Cargo vessel, loaded":            {0.85, 0.65, 0.55, 0.40, 1.7},
	"Cargo vessel, container on deck": {0.85, 0.55, 0.50, 0.40, 1.4},
	"Container ship, loaded":          {0.90, 0.55, 0.55, 0.40, 1.4},
	"Destroyer":                       {0.85, 0.60, 0.65, 0.65, 1.1},
	"Diving support vessel":           {0.90, 0.60, 0.80, 0.55, 1.7},
	"Drilling vessel":                 {1.00, 0.85, 0.92, 0.10, 1.7},
	"Ferry":                           {0.90, 0.45, 0.50, 0.80, 1.1},
	"Fishing vessel":                  {0.95, 0.70, 0.70, 0.40, 1.1},
	"Liquefied natural gas tanker":    {0.70, 0.60, 0.65, 0.50, 1.1},
	"Offshore supply vessel":          {0.90, 0.55, 0.80, 0.55, 1.2},
	"Passenger liner":                 {0.90, 0.40, 0.40, 0.80, 1.2},
	"Research vessel":                 {0.85, 0.55, 0.65, 0.60, 1.4},
	"Speed boat":                      {0.90, 0.55, 0.60, 0.60, 1.1},
	"Tanker, loaded":                  {0.70, 0.90, 0.55, 0.40, 3.1},
	"Tanker, in ballast":              {0.70, 0.75, 0.55, 0.40, 2.2},
	"Tender":                          {0.85, 0.55, 0.55, 0.65, 1.1},
}

// Isherwood regression coefficients, per 10° of wind angle of attack.
// First column is the angle in degrees.

// angle    A_0     A_1     A_2     A_3     A_4     A_5     A_6
var isherwoodSurge = [][]float64{
	{0.0, 2.1520, -5.000, 0.2430, -0.1640, 0.0000, 0.000, 0.000},
	{10.0, 1.7140, -3.330, 0.1450, -0.1210, 0.0000, 0.000, 0.000},
	{20.0, 1.8180, -3.970, 0.2110, -0.1430, 0.0000, 0.000, 0.033},
	{30.0, 1.9650, -4.810, 0.2430, -0.1540, 0.0000, 0.000, 0.041},
	{40.0, 2.3330, -5.990, 0.2470, -0.1900, 0.0000, 0.000, 0.042},
	{50.0, 1.7260, -6.540, 0.1890, -0.1730, 0.3480, 0.000, 0.048},
	{60.0, 0.9130, -4.680, 0.0000, -0.1040, 0.4820, 0.000, 0.052},
	{70.0, 0.4570, -2.880, 0.0000, -0.0680, 0.3460, 0.000, 0.043},
	{80.0, 0.3410, -0.910, 0.0000, -0.0310, 0.0000, 0.000, 0.032},
	{90.0, 0.3550, 0.000, 0.0000, 0.0000, -0.2470, 0.000, 0.018},
	{100.0, 0.6010, 0.000, 0.0000, 0.0000, -0.3720, 0.000, -0.020},
	{110.0, 0.6510, 1.290, 0.0000, 0.0000, -0.5820, 0.000, -0.031},
	{120.0, 0.5640, 2.540, 0.0000, 0.0000, -0.7480, 0.000, -0.024},
	{130.0, -0.1420, 3.580, 0.0000, 0.0470, -0.7000, 0.000, -0.028},
	{140.0, -0.6770, 3.640, 0.0000, 0.0690, -0.5290, 0.000, -0.032},
	{150.0, -0.7230, 3.140, 0.0000, 0.0640, -0.4750, 0.000, -0.032},
	{160.0, -2.1480, 2.560, 0.0000, 0.0810, 0.0000, 1.270, -0.027},
	{170.0, -2.7070, 3.970, -0.1750, 0.1260, 0.0000, 1.810, 0.000},
	{180.0, -2.5290, 3.760, -0.1740, 0.1280, 0.0000, 1.550, 0.000},
}

// angle    B_0     B_1     B_2     B_3     B_4     B_5     B_6
var isherwoodSway = [][]float64{
	{0.0, 0.0000, 0.000, 0.0000, 0.0000, 0.0000, 0.000, 0.000},
	{10.0, 0.0960, 0.220, 0.0000, 0.0000, 0.0000, 0.000, 0.000},
	{20.0, 0.1760, 0.710, 0.0000, 0.0000, 0.0000, 0.000, 0.000},
	{30.0, 0.2250, 1.380, 0.0000, 0.0230, 0.0000, -0.290, 0.000},
	{40.0, 0.3290, 1.820, 0.0000, 0.0430, 0.0000, -0.590, 0.000},
	{50.0, 1.1640, 1.260, 0.1210, 0.0000, -0.2420, -0.950, 0.000},
	{60.0, 1.1630, 0.960, 0.1010, 0.0000, -0.1770, -0.880, 0.000},
	{70.0, 0.9160, 0.530, 0.0690, 0.0000, 0.0000, -0.650, 0.000},
	{80.0, 0.8440, 0.550, 0.0820, 0.0000, 0.0000, -0.540, 0.000},
	{90.0, 0.8890, 0.000, 0.1380, 0.0000, 0.0000, -0.660, 0.000},
	{100.0, 0.7990, 0.000, 0.1550, 0.0000, 0.0000, -0.550, 0.000},
	{110.0, 0.7970, 0.000, 0.1510, 0.0000, 0.0000, -0.550, 0.000},
	{120.0, 0.9960, 0.000, 0.1840, 0.0000, -0.2120, -0.660, 0.340},
	{130.0, 1.0140, 0.000, 0.1910, 0.0000, -0.2800, -0.690, 0.440},
	{140.0, 0.7840, 0.000, 0.1660, 0.0000, -0.2090, -0.530, 0.380},
	{150.0, 0.5360, 0.000, 0.1760, -0.0290, -0.1630, 0.000, 0.270},
	{160.0, 0.2510, 0.000, 0.1060, -0.0220, 0.0000, 0.000, 0.000},
	{170.0, 0.1250, 0.000, 0.0460, -0.0120, 0.0000, 0.000, 0.000},
	{180.0, 0.0000, 0.000, 0.0000, 0.0000, 0.0000, 0.000, 0.000},
}

// angle    C_0     C_1     C_2     C_3     C_4     C_5
var isherwoodYaw = [][]float64{
	{0.0, 0.0000, 0.000, 0.0000, 0.0000, 0.0000, 0.000},
	{10.0, 0.0596, 0.061, 0.0000, 0.0000, 0.0000, -0.074},
	{20.0, 0.1106, 0.204, 0.0000, 0.0000, 0.0000, -0.170},
	{30.0, 0.2258, 0.245, 0.0000, 0.0000, 0.0000, -0.380},
	{40.0, 0.2017, 0.457, 0.0000, 0.0067, 0.0000, -0.472},
	{50.0, 0.1759, 0.573, 0.0000, 0.0118, 0.0000, -0.523},
	{60.0, 0.1925, 0.480, 0.0000, 0.0115, 0.0000, -0.546},
	{70.0, 0.2133, 0.315, 0.0000, 0.0081, 0.0000, -0.526},
	{80.0, 0.1827, 0.254, 0.0000, 0.0053, 0.0000, -0.443},
	{90.0, 0.2627, 0.000, 0.0000, 0.0000, 0.0000, -0.508},
	{100.0, 0.2102, 0.000, -0.0195, 0.0000, 0.0335, -0.492},
	{110.0, 0.1567, 0.000, -0.0258, 0.0000, 0.0497, -0.457},
	{120.0, 0.0801, 0.000, -0.0311, 0.0000, 0.0740, -0.396},
	{130.0, -0.0189, 0.000, -0.0488, 0.0101, 0.1128, -0.420},
	{140.0, 0.0256, 0.000, -0.0422, 0.0100, 0.0889, -0.463},
	{150.0, 0.0552, 0.000, -0.0381, 0.0109, 0.0689, -0.476},
	{160.0, 0.0881, 0.000, -0.0306, 0.0091, 0.0366, -0.415},
	{170.0, 0.0851, 0.000, -0.0122, 0.0025, 0.0000, -0.220},
	{180.0, 0.0000, 0.000, 0.0000, 0.0000, 0.0000, 0.000},
}

// LookupBlendermann returns the Blendermann coefficient row for a vessel
// type. The match is exact; an unknown vessel type is a hard error, not a
// default.
func LookupBlendermann(vesselType string) (BlendermannRow, error) {
	row, ok := blendermannTable[vesselType]
	if !ok {
		return BlendermannRow{}, &UnknownVesselTypeError{VesselType: vesselType}
	}
	return row, nil
}

// BlendermannVesselTypes returns the vessel types present in the
// Blendermann coefficient table, sorted.
func BlendermannVesselTypes() []string {
	types := make([]string, 0, len(blendermannTable))
	for vesselType := range blendermannTable {
		types = append(types, vesselType)
	}
	sort.Strings(types)
	return types
}

// InterpolateIsherwood returns the Isherwood regression coefficients for the
// given degree of freedom, linearly interpolated to the wind angle of attack
// in degrees. Surge and sway yield 7 coefficients (A_0..A_6, B_0..B_6), yaw
// yields 6 (C_0..C_5).
//
// Outside [0, 180]° the value is clamped to the edge row. This replicates
// the two-point linear interpolation the source used, which holds the
// boundary value instead of extrapolating.
func InterpolateIsherwood(dof DOF, angleDeg float64) []float64 {
	var table [][]float64
	switch dof {
	case Surge:
		table = isherwoodSurge
	case Sway:
		table = isherwoodSway
	case Yaw:
		table = isherwoodYaw
	}

	coefficients := make([]float64, len(table[0])-1)
	for i := range coefficients {
		coefficients[i] = interpColumn(table, i+1, angleDeg)
	}
	return coefficients
}

// interpColumn linearly interpolates column col of a breakpoint table, with
// the angle in column 0 as the independent variable. Clamps at the edges.
func interpColumn(table [][]float64, col int, angleDeg float64) float64 {
	n := len(table)
	if angleDeg <= table[0][0] {
		return table[0][col]
	}
	if angleDeg >= table[n-1][0] {
		return table[n-1][col]
	}

	for i := 0; i < n-1; i++ {
		x0, x1 := table[i][0], table[i+1][0]
		if angleDeg == x0 {
			// Hitting a breakpoint returns the row value exactly,
			// never the round-trip through the interpolation formula.
			return table[i][col]
		}
		if angleDeg > x0 && angleDeg < x1 {
			t := (angleDeg - x0) / (x1 - x0)
			return table[i][col] + t*(table[i+1][col]-table[i][col])
		}
	}

	return table[n-1][col]
}

// WindCoefficients returns the wind coefficients in surge, sway and yaw for
// the given geometry, calculated with the selected method.
//
// Args:
//
//	coeffs:        how to determine the wind coefficients
//	geom:          the vessel geometry
//	angleOfAttack: wind angle of attack relative to the bow [rad],
//	               in the wind-is-coming-from convention
//
// Returns:
//
//	C_X: wind coefficient in surge
//	C_Y: wind coefficient in sway
//	C_N: wind coefficient in yaw
func WindCoefficients(coeffs CoefficientType, geom VesselGeometry, angleOfAttack float64) (C_X float64, C_Y float64, C_N float64, err error) {
	if err := geom.Validate(coeffs); err != nil {
		return 0, 0, 0, err
	}

	switch coeffs {
	case Blendermann:
		return blendermannCoefficients(geom, angleOfAttack)
	case Isherwood:
		C_X, C_Y, C_N = isherwoodCoefficients(geom, angleOfAttack)
		return C_X, C_Y, C_N, nil
	default:
		return 0, 0, 0, fmt.Errorf("unknown coefficient type %d", coeffs)
	}
}

// blendermannCoefficients calculates the wind coefficients using
// Blendermann's method (from 1994).
func blendermannCoefficients(geom VesselGeometry, angleOfAttack float64) (float64, float64, float64, error) {
	row, err := LookupBlendermann(geom.VesselType)
	if err != nil {
		return 0, 0, 0, err
	}

	// Heads or tails wind.
	var CDl float64
	if math.Abs(angleOfAttack) <= math.Pi/2 {
		CDl = row.CDl0 * (geom.FrontalArea / geom.LateralArea)
	} else {
		CDl = row.CDlPi * (geom.FrontalArea / geom.LateralArea)
	}

	sin2 := math.Sin(2 * angleOfAttack)
	denominator := 1 - 0.5*row.Delta*(1-CDl/row.CDt)*sin2*sin2

	// Bounded away from zero for delta in [0, 1], but guard the division.
	if denominator == 0 {
		return 0, 0, 0, fmt.Errorf("blendermann: zero denominator at angle of attack %g rad", angleOfAttack)
	}

	C_X := -CDl * (geom.LateralArea / geom.FrontalArea) * math.Cos(angleOfAttack) / denominator
	C_Y := -row.CDt * math.Sin(angleOfAttack) / denominator
	C_N := (geom.S_L/geom.Loa - 0.18*(angleOfAttack-math.Pi/2)) * C_Y

	return C_X, C_Y, C_N, nil
}

// isherwoodCoefficients calculates the wind coefficients using Isherwood's
// method (from 1972). For merchant vessels. The geometry must have been
// validated already.
func isherwoodCoefficients(geom VesselGeometry, angleOfAttack float64) (float64, float64, float64) {
	ish := geom.Isherwood

	// Isherwood's coefficients are tabulated in degrees.
	angleDeg := angleOfAttack * 180.0 / math.Pi

	A := InterpolateIsherwood(Surge, angleDeg)
	B := InterpolateIsherwood(Sway, angleDeg)
	C := InterpolateIsherwood(Yaw, angleDeg)

	// From s_L (centroid of the lateral area, ahead of Lpp/2) to the
	// distance from the bow to the centroid of the lateral projection.
	bowCentroidDistance := geom.Loa/2 - geom.S_L

	C_X := -(A[0] +
		A[1]*((2*geom.LateralArea)/(geom.Loa*geom.Loa)) +
		A[2]*((2*geom.FrontalArea)/(ish.Breadth*ish.Breadth)) +
		A[3]*(geom.Loa/ish.Breadth) +
		A[4]*(ish.S/geom.Loa) +
		A[5]*(bowCentroidDistance/geom.Loa) +
		A[6]*float64(ish.Masts))

	C_Y := -(B[0] +
		B[1]*((2*geom.LateralArea)/(geom.Loa*geom.Loa)) +
		B[2]*((2*geom.FrontalArea)/(ish.Breadth*ish.Breadth)) +
		B[3]*(geom.Loa/ish.Breadth) +
		B[4]*(ish.S/geom.Loa) +
		B[5]*(bowCentroidDistance/geom.Loa) +
		B[6]*(ish.SuperstructureArea/geom.LateralArea))

	C_N := C[0] +
		C[1]*((2*geom.LateralArea)/(geom.Loa*geom.Loa)) +
		C[2]*((2*geom.FrontalArea)/(ish.Breadth*ish.Breadth)) +
		C[3]*(geom.Loa/ish.Breadth) +
		C[4]*(ish.S/geom.Loa) +
		C[5]*(bowCentroidDistance/geom.Loa)

	return C_X, C_Y, C_N
}
