package marcyb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_validate_accepts_a_complete_geometry(t *testing.T) {
	geometry := supplyVessel()

	assert.Nil(t, geometry.Validate(Blendermann))
	assert.Nil(t, geometry.Validate(Isherwood))
}

func Test_validate_rejects_nonpositive_areas_and_lengths(t *testing.T) {
	cases := []struct {
		parameter string
		mutate    func(g *VesselGeometry)
	}{
		{"frontal_area", func(g *VesselGeometry) { g.FrontalArea = 0.0 }},
		{"lateral_area", func(g *VesselGeometry) { g.LateralArea = -1.0 }},
		{"loa", func(g *VesselGeometry) { g.Loa = 0.0 }},
	}

	for _, c := range cases {
		geometry := supplyVessel()
		c.mutate(&geometry)

		err := geometry.Validate(Blendermann)

		var invalidErr *InvalidGeometryError
		assert.True(t, errors.As(err, &invalidErr))
		assert.Equal(t, c.parameter, invalidErr.Parameter)
	}
}

func Test_validate_requires_a_vessel_type_for_blendermann(t *testing.T) {
	geometry := supplyVessel()
	geometry.VesselType = ""

	err := geometry.Validate(Blendermann)

	var missingErr *MissingParameterError
	assert.True(t, errors.As(err, &missingErr))
	assert.Equal(t, Blendermann, missingErr.Model)
	assert.Equal(t, "vessel_type", missingErr.Parameter)
}

func Test_validate_requires_isherwood_geometry_for_isherwood(t *testing.T) {
	geometry := supplyVessel()
	geometry.Isherwood = nil

	err := geometry.Validate(Isherwood)

	var missingErr *MissingParameterError
	assert.True(t, errors.As(err, &missingErr))
	assert.Equal(t, Isherwood, missingErr.Model)
	assert.Equal(t, "isherwood", missingErr.Parameter)
}

func Test_validate_rejects_invalid_isherwood_geometry(t *testing.T) {
	cases := []struct {
		parameter string
		mutate    func(g *IsherwoodGeometry)
	}{
		{"breadth", func(g *IsherwoodGeometry) { g.Breadth = 0.0 }},
		{"superstructure_area", func(g *IsherwoodGeometry) { g.SuperstructureArea = -100.0 }},
		{"s", func(g *IsherwoodGeometry) { g.S = 0.0 }},
		{"masts", func(g *IsherwoodGeometry) { g.Masts = -1 }},
	}

	for _, c := range cases {
		geometry := supplyVessel()
		c.mutate(geometry.Isherwood)

		err := geometry.Validate(Isherwood)

		var invalidErr *InvalidGeometryError
		assert.True(t, errors.As(err, &invalidErr))
		assert.Equal(t, c.parameter, invalidErr.Parameter)
	}
}

func Test_a_zero_mast_count_is_legal(t *testing.T) {
	geometry := supplyVessel()
	geometry.Isherwood.Masts = 0

	assert.Nil(t, geometry.Validate(Isherwood))
}

func Test_load_vessel_geometry_from_yaml(t *testing.T) {
	yamlPreset := `vessel_type: "Offshore supply vessel"
frontal_area: 530.0
lateral_area: 1500.0
loa: 107.5
s_l: 11.5
isherwood:
  superstructure_area: 166.7
  breadth: 35.0
  s: 107.5
  masts: 1
`
	path := filepath.Join(t.TempDir(), "vessel.yaml")
	err := os.WriteFile(path, []byte(yamlPreset), 0644)
	assert.Nil(t, err)

	geometry, err := LoadVesselGeometry(path)

	assert.Nil(t, err)
	assert.Equal(t, "Offshore supply vessel", geometry.VesselType)
	assert.Equal(t, 530.0, geometry.FrontalArea)
	assert.Equal(t, 1500.0, geometry.LateralArea)
	assert.Equal(t, 107.5, geometry.Loa)
	assert.Equal(t, 11.5, geometry.S_L)
	assert.NotNil(t, geometry.Isherwood)
	assert.Equal(t, 35.0, geometry.Isherwood.Breadth)
	assert.Equal(t, 1, geometry.Isherwood.Masts)
}

func Test_load_vessel_geometry_errors(t *testing.T) {
	_, err := LoadVesselGeometry(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	os.WriteFile(path, []byte("vessel_type: [unclosed"), 0644)

	_, err = LoadVesselGeometry(path)
	assert.NotNil(t, err)
}
