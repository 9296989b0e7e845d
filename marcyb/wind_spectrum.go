package marcyb

import (
	"fmt"
	"math"
)

//--------------------------------------
// Wind gust spectra
//--------------------------------------

// Default parameters for the wind gust spectra.
const (
	DefaultDavenportKappa = 0.0025 // surface drag coefficient
	DefaultDavenportL     = 1200.0 // scale length [m]
	DefaultHarrisKappa    = 0.0025
	DefaultHarrisL        = 1800.0
	DefaultOchiShinC10    = 0.025 // surface drag coefficient at 10 m
	DefaultAPIC           = 0.025 // spectrum parameter, between 0.01 and 0.1
	DefaultSpectrumStep   = 0.001
)

// DavenportSpectrum returns the entire Davenport wind gust spectrum, for a
// given kappa (surface drag coefficient), L (scale length) and U_10.
//
// From Davenport (1961).
//
// Args:
//
//	U_10:     mean wind speed at 10 m altitude [m/s]
//	kappa:    surface drag coefficient
//	L:        scale length [m]
//	stepSize: determines the resolution of the spectrum
//
// Returns:
//
//	frequencies: the frequencies [Hz]
//	spectrum:    the entire Davenport wind spectrum
func DavenportSpectrum(U_10, kappa, L, stepSize float64) (frequencies, spectrum []float64) {
	frequencies = arange(0.0, 1.0, stepSize)
	spectrum = make([]float64, len(frequencies))

	for i, frequency := range frequencies {
		chi := frequency * L / U_10
		spectrum[i] = (4 * kappa * L * U_10 * chi) / math.Pow(1+chi*chi, 4.0/3.0)
	}

	return frequencies, spectrum
}

// HarrisSpectrum returns the entire Harris wind gust spectrum, for a given
// kappa (surface drag coefficient), L (scale length) and U_10.
//
// Should not be used for frequencies below 10^-2. "DNV" spectrum.
//
// From Harris (1983).
func HarrisSpectrum(U_10, kappa, L, stepSize float64) (frequencies, spectrum []float64) {
	frequencies = arange(0.0, 1.0, stepSize)
	spectrum = make([]float64, len(frequencies))

	for i, frequency := range frequencies {
		chi := frequency * L / U_10
		spectrum[i] = (4 * kappa * L * U_10) / math.Pow(2+chi*chi, 5.0/6.0)
	}

	return frequencies, spectrum
}

// OchiShinSpectrum returns the entire Ochi-Shin wind gust spectrum, for a
// given C_10 (surface drag coefficient at 10 m altitude) and U_10.
//
// The spectrum is defined piecewise in the non-dimensional frequency
// f* = f / U_10; the returned frequencies are dimensional [Hz].
//
// From Ochi-Shin (1988).
func OchiShinSpectrum(U_10, C_10, stepSize float64) (frequencies, spectrum []float64) {
	fStars := arange(0.001, 1.0, stepSize)
	frequencies = make([]float64, len(fStars))
	spectrum = make([]float64, len(fStars))

	uStar := math.Sqrt(C_10) * U_10

	for i, fStar := range fStars {
		var nondimensional float64
		switch {
		case fStar <= 0.003:
			nondimensional = 583 * fStar
		case fStar <= 0.1:
			nondimensional = (420 * math.Pow(fStar, 0.70)) / math.Pow(1+math.Pow(fStar, 0.35), 11.5)
		default:
			nondimensional = (838 * fStar) / math.Pow(1+math.Pow(fStar, 0.35), 11.5)
		}

		frequency := U_10 * fStar
		frequencies[i] = frequency
		spectrum[i] = nondimensional * uStar * uStar / frequency
	}

	return frequencies, spectrum
}

// NPDSpectrum returns the entire NPD wind gust spectrum, for a given U_10.
//
// NPD = Norwegian Petroleum Directorate.
func NPDSpectrum(U_10, stepSize float64) (frequencies, spectrum []float64) {
	const n = 0.468

	frequencies = arange(0.0, 1.0, stepSize)
	spectrum = make([]float64, len(frequencies))

	for i, frequency := range frequencies {
		fBar := 172.0 * frequency * math.Pow(U_10/10.0, -0.75)
		spectrum[i] = (320.0 * math.Pow(U_10/10.0, 2)) / math.Pow(1+math.Pow(fBar, n), 5/(3*n))
	}

	return frequencies, spectrum
}

// APISpectrum returns the entire API wind gust spectrum, for a given C
// (spectrum parameter, between 0.01 and 0.1) and U_10.
//
// API = American Petroleum Institute.
func APISpectrum(U_10, C, stepSize float64) (frequencies, spectrum []float64) {
	omega := 0.15 * U_10 * math.Pow(0.5, -0.125)
	f_p := C * 0.1 * U_10

	frequencies = arange(0.0, 1.0, stepSize)
	spectrum = make([]float64, len(frequencies))

	for i, frequency := range frequencies {
		spectrum[i] = (omega * omega / f_p) / (1 + 1.5*math.Pow(frequency/f_p, 5.0/3.0))
	}

	return frequencies, spectrum
}

// WindGustSpectrum evaluates the selected wind gust spectrum model with its
// default parameters.
func WindGustSpectrum(spectrumType WindSpectrumType, U_10 float64) (frequencies, spectrum []float64, err error) {
	switch spectrumType {
	case Davenport:
		frequencies, spectrum = DavenportSpectrum(U_10, DefaultDavenportKappa, DefaultDavenportL, DefaultSpectrumStep)
	case Harris:
		frequencies, spectrum = HarrisSpectrum(U_10, DefaultHarrisKappa, DefaultHarrisL, DefaultSpectrumStep)
	case OchiShin:
		frequencies, spectrum = OchiShinSpectrum(U_10, DefaultOchiShinC10, DefaultSpectrumStep)
	case NPD:
		frequencies, spectrum = NPDSpectrum(U_10, DefaultSpectrumStep)
	case API:
		frequencies, spectrum = APISpectrum(U_10, DefaultAPIC, DefaultSpectrumStep)
	default:
		return nil, nil, fmt.Errorf("unknown wind spectrum type %d", spectrumType)
	}

	return frequencies, spectrum, nil
}

// U10ToUz returns the mean wind speed at altitude z given the mean wind
// speed at 10 m (U_10) and the surface drag coefficient at 10 m (C_10).
func U10ToUz(U_10, C_10, z float64) float64 {
	uStar := math.Sqrt(C_10 * U_10)
	return U_10 + 2.5*uStar*math.Log(z/10.0)
}
