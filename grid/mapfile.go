package grid

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// mapFile is the YAML layout of a map:
//
//	resolution: 0.05
//	origin: {x: -1.0, y: -2.5, yaw: 0}
//	rows:
//	  - "..#.."
//	  - "....."
//
// rows[0] is grid row 0, the row nearest the origin.
type mapFile struct {
	Resolution float64 `yaml:"resolution"`
	Origin     struct {
		X   float64 `yaml:"x"`
		Y   float64 `yaml:"y"`
		Yaw float64 `yaml:"yaw"`
	} `yaml:"origin"`
	Rows []string `yaml:"rows"`
}

// LoadMap reads a YAML map file.
func LoadMap(path string) (*Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := ParseMap(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseMap decodes a YAML map. A missing resolution defaults to 1.
func ParseMap(raw []byte) (*Grid, error) {
	m := mapFile{Resolution: 1}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}
	g, err := Parse(m.Rows...)
	if err != nil {
		return nil, err
	}
	geometry := Geometry{Resolution: m.Resolution, Yaw: m.Origin.Yaw}
	geometry.Origin.X, geometry.Origin.Y = m.Origin.X, m.Origin.Y
	if err := g.SetGeometry(geometry); err != nil {
		return nil, err
	}
	return g, nil
}
