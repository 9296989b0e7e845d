package marcyb

//--------------------------------------
// Lowpass filtering
//--------------------------------------

// LowpassFilter lowpass filters a time series. First order.
//
// Args:
//
//	inputSeries:  time series to filter
//	timeConstant: time constant for the filter
//
// Returns:
//
//	the filtered time series, one element longer than the input since the
//	first element is passed through unfiltered
func LowpassFilter(inputSeries []float64, timeConstant float64) []float64 {
	if len(inputSeries) == 0 {
		return nil
	}

	outputSeries := make([]float64, 0, len(inputSeries)+1)
	outputSeries = append(outputSeries, inputSeries[0])

	B := 1.0 / timeConstant
	A := 1.0 - B

	for _, currentUnfilteredValue := range inputSeries {
		previousFilteredValue := outputSeries[len(outputSeries)-1]
		outputSeries = append(outputSeries, A*previousFilteredValue+B*currentUnfilteredValue)
	}

	return outputSeries
}
