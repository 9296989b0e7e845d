package marcyb

import "math"

//--------------------------------------
// Minimum jerk trajectory generator
//--------------------------------------

// MinimumJerkTrajectory generates a minimum jerk trajectory from the
// current value to a setpoint, together with the trajectory of the
// derivative.
//
// Args:
//
//	current:   the current value
//	setpoint:  the wanted value
//	frequency: the frequency of the system [Hz]
//	moveTime:  how much time to use to get from current to setpoint [s]
//
// Returns:
//
//	trajectory:           a trajectory from current to setpoint
//	trajectoryDerivative: the trajectory of the derivative
func MinimumJerkTrajectory(current, setpoint, frequency, moveTime float64) (trajectory, trajectoryDerivative []float64) {
	timefreq := int(moveTime * frequency)
	if timefreq < 2 {
		return nil, nil
	}

	trajectory = make([]float64, 0, timefreq-1)
	trajectoryDerivative = make([]float64, 0, timefreq-1)

	tf := float64(timefreq)
	for time := 1; time < timefreq; time++ {
		t := float64(time)

		trajectory = append(trajectory,
			current+(setpoint-current)*
				(10.0*math.Pow(t/tf, 3)-
					15.0*math.Pow(t/tf, 4)+
					6.0*math.Pow(t/tf, 5)))

		trajectoryDerivative = append(trajectoryDerivative,
			frequency*(setpoint-current)*
				(30.0*math.Pow(t, 2)*math.Pow(1.0/tf, 3)-
					60.0*math.Pow(t, 3)*math.Pow(1.0/tf, 4)+
					30.0*math.Pow(t, 4)*math.Pow(1.0/tf, 5)))
	}

	return trajectory, trajectoryDerivative
}
