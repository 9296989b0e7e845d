package marcyb

import (
	"bytes"
	"strconv"
)

//--------------------------------------
// CSV export
//--------------------------------------

func writeFloat(buf *bytes.Buffer, v float64) {
	buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

// CoefficientSweepToCSV writes a wind coefficient sweep as CSV.
func CoefficientSweepToCSV(buf *bytes.Buffer, records []CoefficientRecord) {
	buf.WriteString("angle_deg,C_X,C_Y,C_N\n")

	for _, r := range records {
		writeFloat(buf, r.AngleDeg)
		buf.WriteString(",")
		writeFloat(buf, r.C_X)
		buf.WriteString(",")
		writeFloat(buf, r.C_Y)
		buf.WriteString(",")
		writeFloat(buf, r.C_N)
		buf.WriteString("\n")
	}
}

// ForceSweepToCSV writes a wind force sweep as CSV.
func ForceSweepToCSV(buf *bytes.Buffer, records []ForceRecord) {
	buf.WriteString("wind_direction_deg,surge_kN,sway_kN,yaw_kNm\n")

	for _, r := range records {
		writeFloat(buf, r.WindDirectionDeg)
		buf.WriteString(",")
		writeFloat(buf, r.Surge)
		buf.WriteString(",")
		writeFloat(buf, r.Sway)
		buf.WriteString(",")
		writeFloat(buf, r.Yaw)
		buf.WriteString("\n")
	}
}

// SpectrumToCSV writes a spectrum as CSV. The labels name the frequency and
// density columns, e.g. "frequency_Hz" and "S".
func SpectrumToCSV(buf *bytes.Buffer, frequencies, spectrum []float64, frequencyLabel, spectrumLabel string) {
	buf.WriteString(frequencyLabel)
	buf.WriteString(",")
	buf.WriteString(spectrumLabel)
	buf.WriteString("\n")

	for i := range frequencies {
		writeFloat(buf, frequencies[i])
		buf.WriteString(",")
		writeFloat(buf, spectrum[i])
		buf.WriteString("\n")
	}
}

// TrajectoryToCSV writes a trajectory and its derivative as CSV, with the
// time axis reconstructed from the system frequency.
func TrajectoryToCSV(buf *bytes.Buffer, trajectory, trajectoryDerivative []float64, frequency float64) {
	buf.WriteString("time_s,position,velocity\n")

	for i := range trajectory {
		writeFloat(buf, float64(i+1)/frequency)
		buf.WriteString(",")
		writeFloat(buf, trajectory[i])
		buf.WriteString(",")
		writeFloat(buf, trajectoryDerivative[i])
		buf.WriteString("\n")
	}
}
