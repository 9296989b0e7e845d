package marcyb

import (
	"fmt"
	"math"
)

//--------------------------------------
// Wave spectra
//--------------------------------------

const grav = 9.81

// PiersonMoskowitzParams are the parameters of the Pierson-Moskowitz wave
// spectrum. Alpha and beta can be calculated from H_s and T_0 instead of
// using experience values; see DefaultPiersonMoskowitzParams.
type PiersonMoskowitzParams struct {
	CalcAlpha bool    // calculate alpha from H_s and T_0
	Alpha     float64 // wave spectrum parameter
	H_s       float64 // significant wave height [m], for calculating alpha
	T_0       float64 // zero-cross wave period [s], for calculating alpha and beta
	CalcBeta  bool    // calculate beta from T_0
	Beta      float64 // wave spectrum parameter
	StepSize  float64 // determines the resolution of the spectrum
}

// DefaultPiersonMoskowitzParams returns the experience values
// alpha = 0.0081, beta = 0.74 and a step size of 0.01.
func DefaultPiersonMoskowitzParams() PiersonMoskowitzParams {
	return PiersonMoskowitzParams{Alpha: 0.0081, Beta: 0.74, StepSize: 0.01}
}

// PiersonMoskowitzSpectrum returns the entire Pierson-Moskowitz wave
// spectrum for a given alpha, beta and U_10.
//
// Assumes a fully developed sea, i.e. fetch length and duration are
// infinite.
//
// Args:
//
//	U_10: wind velocity at 10 m above sea level [m/s]
//	p:    spectrum parameters
//
// Returns:
//
//	omegas:   the circular frequencies [rad/s]
//	spectrum: the entire PM wave spectrum
func PiersonMoskowitzSpectrum(U_10 float64, p PiersonMoskowitzParams) (omegas, spectrum []float64) {
	U_195 := 1.026 * U_10 // assumes a drag coefficient of 1.3e-3
	omega_0 := grav / U_195

	alpha := p.Alpha
	if p.CalcAlpha {
		alpha = 4 * math.Pow(math.Pi, 3) * math.Pow(p.H_s/(grav*p.T_0*p.T_0), 2)
	}

	beta := p.Beta
	if p.CalcBeta {
		beta = 16 * math.Pow(math.Pi, 3) * math.Pow(U_195/(grav*p.T_0), 4)
	}

	omegas = arange(0.01, 2.0, p.StepSize)
	spectrum = make([]float64, len(omegas))

	for i, omega := range omegas {
		spectrum[i] = ((alpha * grav * grav) / math.Pow(omega, 5)) *
			math.Exp(-beta*math.Pow(omega_0/omega, 4))
	}

	return omegas, spectrum
}

// JonswapParams are the parameters of the JONSWAP wave spectrum. Omega_p and
// alpha can be calculated from the fetch length instead of using experience
// values; see DefaultJonswapParams.
type JonswapParams struct {
	FetchDependent bool    // calculate alpha and omega_p from the fetch length
	Fetch          float64 // fetch length [m]
	Alpha          float64 // wave spectrum parameter
	Beta           float64 // wave spectrum parameter
	Gamma          float64 // wave spectrum parameter
	OmegaP         float64 // peak frequency [rad/s]
	StepSize       float64 // determines the resolution of the spectrum
}

// DefaultJonswapParams returns the experience values alpha = 0.0081,
// beta = 1.25, gamma = 3.3, omega_p = 0.5 and a step size of 0.01.
func DefaultJonswapParams() JonswapParams {
	return JonswapParams{Alpha: 0.0081, Beta: 1.25, Gamma: 3.3, OmegaP: 0.5, StepSize: 0.01}
}

// JonswapSpectrum returns the entire JONSWAP wave spectrum for a given
// alpha, beta, gamma, omega_p, fetch length and U_10.
//
// Args:
//
//	U_10: wind velocity at 10 m above sea level [m/s]
//	p:    spectrum parameters
//
// Returns:
//
//	omegas:   the circular frequencies [rad/s]
//	spectrum: the entire JONSWAP wave spectrum
func JonswapSpectrum(U_10 float64, p JonswapParams) (omegas, spectrum []float64) {
	alpha, omega_p := p.Alpha, p.OmegaP
	if p.FetchDependent {
		omega_p = (2 * math.Pi * 16.04) / math.Pow(p.Fetch*U_10, 0.38)
		alpha = 0.076 * math.Pow((p.Fetch*grav)/(U_10*U_10), -0.22)
	}

	omegas = arange(0.01, 2.0, p.StepSize)
	spectrum = make([]float64, len(omegas))

	for i, omega := range omegas {
		sigma := 0.07
		if omega > omega_p {
			sigma = 0.09
		}

		r := math.Exp(-math.Pow(omega-omega_p, 2) / (2 * sigma * sigma * omega_p * omega_p))

		spectrum[i] = ((alpha * grav * grav) / math.Pow(omega, 5)) *
			math.Exp(-p.Beta*math.Pow(omega_p/omega, 4)) *
			math.Pow(p.Gamma, r)
	}

	return omegas, spectrum
}

// WaveSpectrum evaluates the selected wave spectrum model with its default
// parameters.
func WaveSpectrum(spectrumType WaveSpectrumType, U_10 float64) (omegas, spectrum []float64, err error) {
	switch spectrumType {
	case PiersonMoskowitz:
		omegas, spectrum = PiersonMoskowitzSpectrum(U_10, DefaultPiersonMoskowitzParams())
	case Jonswap:
		omegas, spectrum = JonswapSpectrum(U_10, DefaultJonswapParams())
	default:
		return nil, nil, fmt.Errorf("unknown wave spectrum type %d", spectrumType)
	}

	return omegas, spectrum, nil
}
