// marcyb: closed-form marine cybernetics formulas
package main

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"

	"github.com/mika-s/marcyb-go/marcyb"
)

// The offshore supply vessel example geometry used throughout the original
// test scripts: Loa 107.5 m, frontal area 530 m², lateral area 1500 m².
func exampleSupplyVessel() marcyb.VesselGeometry {
	return marcyb.VesselGeometry{
		VesselType:  "Offshore supply vessel",
		FrontalArea: 530.0,
		LateralArea: 1500.0,
		Loa:         107.5,
		S_L:         11.5,
		Isherwood: &marcyb.IsherwoodGeometry{
			SuperstructureArea: 1500.0 / 9.0,
			Breadth:            35.0,
			S:                  107.5,
			Masts:              1,
		},
	}
}

func main() {
	parser := argparse.NewParser("marcyb", "Closed-form marine cybernetics formulas: wind loads, gust and wave spectra, thruster forces, trajectories")

	mode := parser.Selector("m", "mode", []string{"coeffs", "forces", "wind-spectrum", "wave-spectrum", "thruster", "trajectory"}, &argparse.Options{
		Default: "coeffs",
		Help:    "What to compute"})

	coeffs := parser.Selector("c", "coeffs", []string{"blendermann", "isherwood"}, &argparse.Options{
		Default: "blendermann",
		Help:    "Wind coefficient model"})

	vesselFile := parser.String("", "vessel", &argparse.Options{
		Default: "",
		Help:    "YAML file with the vessel geometry (built-in offshore supply vessel when empty)"})

	windSpeed := parser.Float("", "wind_speed", &argparse.Options{
		Default: 10.0,
		Help:    "Wind speed [m/s] (forces mode), or U_10 [m/s] (spectrum modes)"})

	temperature := parser.Float("", "temperature", &argparse.Options{
		Default: 20.0,
		Help:    "Air temperature [deg C] (forces mode)"})

	heading := parser.Float("", "heading", &argparse.Options{
		Default: 0.0,
		Help:    "Vessel heading [deg] (forces mode)"})

	windSpectrum := parser.Selector("", "wind_spectrum", []string{"davenport", "harris", "ochi-shin", "npd", "api"}, &argparse.Options{
		Default: "harris",
		Help:    "Wind gust spectrum model"})

	waveSpectrum := parser.Selector("", "wave_spectrum", []string{"pierson-moskowitz", "jonswap"}, &argparse.Options{
		Default: "pierson-moskowitz",
		Help:    "Wave spectrum model"})

	thruster := parser.Selector("", "thruster", []string{"tunnel", "azimuth", "propeller", "waterjet"}, &argparse.Options{
		Default: "tunnel",
		Help:    "Thruster type for IMCA power-to-force"})

	power := parser.Float("", "power", &argparse.Options{
		Default: 880.0,
		Help:    "Maximum thruster power [kW], both directions"})

	current := parser.Float("", "current", &argparse.Options{
		Default: 0.0,
		Help:    "Current value (trajectory mode)"})

	setpoint := parser.Float("", "setpoint", &argparse.Options{
		Default: 10.0,
		Help:    "Setpoint (trajectory mode)"})

	frequency := parser.Float("", "frequency", &argparse.Options{
		Default: 100.0,
		Help:    "System frequency [Hz] (trajectory mode)"})

	moveTime := parser.Float("", "move_time", &argparse.Options{
		Default: 10.0,
		Help:    "Time to move from current to setpoint [s] (trajectory mode)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (stdout when empty)"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR"}, &argparse.Options{
		Default: "INFO",
		Help:    "Log level"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("marcyb")
	switch *logLevel {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	}

	geom := exampleSupplyVessel()
	if *vesselFile != "" {
		var err error
		geom, err = marcyb.LoadVesselGeometry(*vesselFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Infof("loaded vessel geometry from %s", *vesselFile)
	}

	coefficientType := marcyb.Blendermann
	if *coeffs == "isherwood" {
		coefficientType = marcyb.Isherwood
	}

	buf := bytes.NewBuffer([]byte{})

	var err error
	switch *mode {
	case "coeffs":
		err = runCoefficientSweep(buf, coefficientType, geom)
	case "forces":
		err = runForceSweep(buf, coefficientType, geom, *windSpeed, *temperature, *heading)
	case "wind-spectrum":
		err = runWindSpectrum(buf, *windSpectrum, *windSpeed)
	case "wave-spectrum":
		err = runWaveSpectrum(buf, *waveSpectrum, *windSpeed)
	case "thruster":
		err = runThruster(buf, *thruster, *power)
	case "trajectory":
		runTrajectory(buf, *current, *setpoint, *frequency, *moveTime)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("saving CSV: %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// Wind coefficients swept over the angle of attack, 0-180 deg.
func runCoefficientSweep(buf *bytes.Buffer, coeffs marcyb.CoefficientType, geom marcyb.VesselGeometry) error {
	records, err := marcyb.SweepWindCoefficients(coeffs, geom, 0.0, 180.0, 1.0)
	if err != nil {
		return err
	}
	marcyb.CoefficientSweepToCSV(buf, records)
	return nil
}

// Wind forces and moment swept over the wind direction, 0-360 deg.
func runForceSweep(buf *bytes.Buffer, coeffs marcyb.CoefficientType, geom marcyb.VesselGeometry, windSpeed, temperature, headingDeg float64) error {
	opt := marcyb.DefaultWindOptions()
	opt.Temperature = temperature
	opt.VesselHeading = headingDeg * math.Pi / 180.0

	records, err := marcyb.SweepWindForces(windSpeed, geom, coeffs, opt, 0.0, 360.0, 1.0)
	if err != nil {
		return err
	}
	marcyb.ForceSweepToCSV(buf, records)
	return nil
}

func runWindSpectrum(buf *bytes.Buffer, name string, U_10 float64) error {
	spectrumType := map[string]marcyb.WindSpectrumType{
		"davenport": marcyb.Davenport,
		"harris":    marcyb.Harris,
		"ochi-shin": marcyb.OchiShin,
		"npd":       marcyb.NPD,
		"api":       marcyb.API,
	}[name]

	frequencies, spectrum, err := marcyb.WindGustSpectrum(spectrumType, U_10)
	if err != nil {
		return err
	}
	marcyb.SpectrumToCSV(buf, frequencies, spectrum, "frequency_Hz", "S")
	return nil
}

func runWaveSpectrum(buf *bytes.Buffer, name string, U_10 float64) error {
	spectrumType := marcyb.PiersonMoskowitz
	if name == "jonswap" {
		spectrumType = marcyb.Jonswap
	}

	omegas, spectrum, err := marcyb.WaveSpectrum(spectrumType, U_10)
	if err != nil {
		return err
	}
	marcyb.SpectrumToCSV(buf, omegas, spectrum, "omega_rad_s", "S")
	return nil
}

func runThruster(buf *bytes.Buffer, name string, power float64) error {
	thrusterType := map[string]marcyb.ThrusterType{
		"tunnel":    marcyb.Tunnel,
		"azimuth":   marcyb.Azimuth,
		"propeller": marcyb.Propeller,
		"waterjet":  marcyb.Waterjet,
	}[name]

	maxForce, minForce, err := marcyb.IMCAPowerToForce(thrusterType, power, power)
	if err != nil {
		return err
	}

	buf.WriteString("thruster,power_kW,max_force_kN,min_force_kN\n")
	buf.WriteString(fmt.Sprintf("%s,%g,%.2f,%.2f\n", name, power, maxForce, minForce))
	return nil
}

func runTrajectory(buf *bytes.Buffer, current, setpoint, frequency, moveTime float64) {
	trajectory, trajectoryDerivative := marcyb.MinimumJerkTrajectory(current, setpoint, frequency, moveTime)
	marcyb.TrajectoryToCSV(buf, trajectory, trajectoryDerivative, frequency)
}
