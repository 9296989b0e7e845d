package marcyb

import "fmt"

// UnknownVesselTypeError is returned when a vessel type has no entry in the
// Blendermann coefficient table. The lookup is exact-match; there is no
// fuzzy matching and no default row.
type UnknownVesselTypeError struct {
	VesselType string
}

func (e *UnknownVesselTypeError) Error() string {
	return fmt.Sprintf("unknown vessel type %q in the Blendermann coefficient table", e.VesselType)
}

// MissingParameterError is returned when a parameter required by the selected
// coefficient model is absent.
type MissingParameterError struct {
	Model     CoefficientType
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q for the %s model", e.Parameter, e.Model)
}

// InvalidGeometryError is returned when a geometric quantity breaks the
// model preconditions, e.g. a non-positive area or length.
type InvalidGeometryError struct {
	Parameter string
	Value     float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s = %g", e.Parameter, e.Value)
}
