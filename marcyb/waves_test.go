package marcyb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Expected values match the Python implementation, U_10 = 10 m/s and the
// experience values alpha = 0.0081, beta = 0.74.
func Test_pierson_moskowitz_spectrum(t *testing.T) {
	omegas, spectrum := PiersonMoskowitzSpectrum(10.0, DefaultPiersonMoskowitzParams())

	assert.Equal(t, 199, len(omegas))
	assert.Equal(t, len(omegas), len(spectrum))
	assert.InDelta(t, 0.01, omegas[0], 1e-9)
	assert.InDelta(t, 1.99, omegas[198], 1e-9)

	assert.InDelta(t, 0.5, omegas[49], 1e-9)
	assert.InDelta(t, 0.0012572063520524773, spectrum[49], 1e-6)

	assert.InDelta(t, 1.0, omegas[99], 1e-9)
	assert.InDelta(t, 0.41997663625260656, spectrum[99], 1e-6)
}

// Alpha and beta recomputed from H_s = 3 m and T_0 = 7 s.
func Test_pierson_moskowitz_spectrum_calculated_parameters(t *testing.T) {
	p := DefaultPiersonMoskowitzParams()
	p.CalcAlpha = true
	p.CalcBeta = true
	p.H_s = 3.0
	p.T_0 = 7.0

	omegas, spectrum := PiersonMoskowitzSpectrum(10.0, p)

	assert.InDelta(t, 0.9, omegas[89], 1e-9)
	assert.InDelta(t, 0.5746152376879838, spectrum[89], 1e-6)
}

// Expected values match the Python implementation, experience values
// alpha = 0.0081, beta = 1.25, gamma = 3.3, omega_p = 0.5.
func Test_jonswap_spectrum(t *testing.T) {
	omegas, spectrum := JonswapSpectrum(10.0, DefaultJonswapParams())

	assert.Equal(t, 199, len(omegas))

	assert.InDelta(t, 0.5, omegas[49], 1e-9)
	assert.InDelta(t, 23.584075117896187, spectrum[49], 1e-6)

	assert.InDelta(t, 0.6, omegas[59], 1e-9)
	assert.InDelta(t, 6.069645281609151, spectrum[59], 1e-6)
}

// Fetch-dependent alpha and omega_p, fetch 100 km.
func Test_jonswap_spectrum_fetch_dependent(t *testing.T) {
	p := DefaultJonswapParams()
	p.FetchDependent = true
	p.Fetch = 100000.0

	omegas, spectrum := JonswapSpectrum(10.0, p)

	assert.InDelta(t, 0.53, omegas[52], 1e-9)
	assert.InDelta(t, 22.108316482803243, spectrum[52], 1e-6)

	assert.InDelta(t, 0.6, omegas[59], 1e-9)
	assert.InDelta(t, 8.658328942317459, spectrum[59], 1e-6)
}

func Test_wave_spectrum_dispatch(t *testing.T) {
	omegas, spectrum, err := WaveSpectrum(PiersonMoskowitz, 10.0)
	assert.NoError(t, err)
	assert.Equal(t, 199, len(omegas))
	assert.InDelta(t, 0.41997663625260656, spectrum[99], 1e-6)

	_, _, err = WaveSpectrum(WaveSpectrumType(99), 10.0)
	assert.Error(t, err)
}
