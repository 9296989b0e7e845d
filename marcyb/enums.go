package marcyb

//--------------------------------------
// Enumerations
//--------------------------------------

// CoefficientType selects how the wind load coefficients are determined.
type CoefficientType int

const (
	// Blendermann's method (1994).
	Blendermann CoefficientType = iota + 1
	// Isherwood's method (1972). For merchant vessels.
	Isherwood
)

func (c CoefficientType) String() string {
	switch c {
	case Blendermann:
		return "blendermann"
	case Isherwood:
		return "isherwood"
	}
	return "unknown"
}

// DOF is a degree of freedom in the horizontal plane.
type DOF int

const (
	Surge DOF = iota
	Sway
	Yaw
)

func (d DOF) String() string {
	switch d {
	case Surge:
		return "surge"
	case Sway:
		return "sway"
	case Yaw:
		return "yaw"
	}
	return "unknown"
}

// ThrusterType is the type of thruster, for power-to-force conversion.
type ThrusterType int

const (
	Tunnel ThrusterType = iota + 1
	Azimuth
	Propeller
	Waterjet
)

func (t ThrusterType) String() string {
	switch t {
	case Tunnel:
		return "tunnel"
	case Azimuth:
		return "azimuth"
	case Propeller:
		return "propeller"
	case Waterjet:
		return "waterjet"
	}
	return "unknown"
}

// WindSpectrumType selects a wind gust spectrum model.
type WindSpectrumType int

const (
	Davenport WindSpectrumType = iota + 1
	Harris
	OchiShin
	NPD
	API
)

func (w WindSpectrumType) String() string {
	switch w {
	case Davenport:
		return "davenport"
	case Harris:
		return "harris"
	case OchiShin:
		return "ochi-shin"
	case NPD:
		return "npd"
	case API:
		return "api"
	}
	return "unknown"
}

// WaveSpectrumType selects a wave spectrum model.
type WaveSpectrumType int

const (
	PiersonMoskowitz WaveSpectrumType = iota + 1
	Jonswap
)

func (w WaveSpectrumType) String() string {
	switch w {
	case PiersonMoskowitz:
		return "pierson-moskowitz"
	case Jonswap:
		return "jonswap"
	}
	return "unknown"
}
