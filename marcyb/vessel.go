package marcyb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// VesselGeometry holds the wind-area geometry of a vessel.
//
//	VesselType:  vessel type to use with Blendermann
//	FrontalArea: frontal area of the vessel [m²]
//	LateralArea: lateral area of the vessel [m²]
//	Loa:         length over all [m]
//	S_L:         centroid of the wind area in the lateral direction,
//	             ahead of Lpp/2 [m]
//	Isherwood:   extra geometry needed by Isherwood's method, nil when
//	             not provided
type VesselGeometry struct {
	VesselType  string             `yaml:"vessel_type"`
	FrontalArea float64            `yaml:"frontal_area"`
	LateralArea float64            `yaml:"lateral_area"`
	Loa         float64            `yaml:"loa"`
	S_L         float64            `yaml:"s_l"`
	Isherwood   *IsherwoodGeometry `yaml:"isherwood"`
}

// IsherwoodGeometry holds the geometry only Isherwood's method needs.
//
//	SuperstructureArea: lateral area of the superstructure [m²]
//	Breadth:            breadth [m]
//	S:                  length of the lateral projection [m]
//	Masts:              number of distinct groups of masts or king posts
type IsherwoodGeometry struct {
	SuperstructureArea float64 `yaml:"superstructure_area"`
	Breadth            float64 `yaml:"breadth"`
	S                  float64 `yaml:"s"`
	Masts              int     `yaml:"masts"`
}

// Validate checks the geometry preconditions for the given coefficient model.
// Areas and lengths must be strictly positive, otherwise the non-dimensional
// ratios in the models are undefined.
func (g *VesselGeometry) Validate(coeffs CoefficientType) error {
	if g.FrontalArea <= 0 {
		return &InvalidGeometryError{Parameter: "frontal_area", Value: g.FrontalArea}
	}
	if g.LateralArea <= 0 {
		return &InvalidGeometryError{Parameter: "lateral_area", Value: g.LateralArea}
	}
	if g.Loa <= 0 {
		return &InvalidGeometryError{Parameter: "loa", Value: g.Loa}
	}

	switch coeffs {
	case Blendermann:
		if g.VesselType == "" {
			return &MissingParameterError{Model: Blendermann, Parameter: "vessel_type"}
		}
	case Isherwood:
		if g.Isherwood == nil {
			return &MissingParameterError{Model: Isherwood, Parameter: "isherwood"}
		}
		if g.Isherwood.Breadth <= 0 {
			return &InvalidGeometryError{Parameter: "breadth", Value: g.Isherwood.Breadth}
		}
		if g.Isherwood.SuperstructureArea <= 0 {
			return &InvalidGeometryError{Parameter: "superstructure_area", Value: g.Isherwood.SuperstructureArea}
		}
		if g.Isherwood.S <= 0 {
			return &InvalidGeometryError{Parameter: "s", Value: g.Isherwood.S}
		}
		if g.Isherwood.Masts < 0 {
			return &InvalidGeometryError{Parameter: "masts", Value: float64(g.Isherwood.Masts)}
		}
	}

	return nil
}

// LoadVesselGeometry reads a vessel geometry preset from a YAML file.
func LoadVesselGeometry(path string) (VesselGeometry, error) {
	var g VesselGeometry

	data, err := os.ReadFile(path)
	if err != nil {
		return g, fmt.Errorf("read vessel file: %w", err)
	}

	if err := yaml.Unmarshal(data, &g); err != nil {
		return g, fmt.Errorf("parse vessel file %s: %w", path, err)
	}

	return g, nil
}
