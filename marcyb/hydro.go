package marcyb

import "math"

//--------------------------------------
// Hydrodynamic coefficients
//--------------------------------------

// CbExtrapolation returns the block coefficient for an arbitrary draught,
// given the block coefficient and draught at the design draught.
// Riddlesworth's method.
//
// Args:
//
//	cbDes: block coefficient at design draught
//	dDes:  design draught [m]
//	d:     draught to find the new block coefficient for [m]
func CbExtrapolation(cbDes, dDes, d float64) float64 {
	return 1 - (1-cbDes)*math.Pow(dDes/d, 1.0/3.0)
}

// FinenessRatio returns the fineness ratio of a vessel, given the length in
// the waterline [m] and the displacement [metric tons].
func FinenessRatio(lwl, displacement float64) float64 {
	return lwl / math.Pow(displacement, 1.0/3.0)
}
