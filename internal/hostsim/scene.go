package hostsim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rok-office/cwdetails/connector"
	"github.com/rok-office/cwdetails/geometry"
)

var ErrInvalidScene = errors.New("invalid scene")

// Scene is the YAML description of the columns a Host starts with.
type Scene struct {
	Columns []SceneColumn `yaml:"columns"`
}

type SceneColumn struct {
	Name   string    `yaml:"name"`
	P1     []float64 `yaml:"p1"`
	P2     []float64 `yaml:"p2"`
	XL     []float64 `yaml:"xl"`
	YL     []float64 `yaml:"yl"`
	ZL     []float64 `yaml:"zl"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	// Active defaults to true.
	Active *bool `yaml:"active"`
}

func triple(field string, v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidScene, field, len(v))
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}

func (sc SceneColumn) column() (connector.Column, error) {
	var raw [5][3]float64
	for i, f := range []struct {
		name string
		v    []float64
	}{{"p1", sc.P1}, {"p2", sc.P2}, {"xl", sc.XL}, {"yl", sc.YL}, {"zl", sc.ZL}} {
		t, err := triple(f.name, f.v)
		if err != nil {
			return connector.Column{}, err
		}
		raw[i] = t
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return connector.Column{}, fmt.Errorf("%w: width and height must be positive", ErrInvalidScene)
	}
	return connector.Column{
		P1:     geometry.Point3FromArray(raw[0]),
		P2:     geometry.Point3FromArray(raw[1]),
		XL:     geometry.Vector3FromArray(raw[2]),
		YL:     geometry.Vector3FromArray(raw[3]),
		ZL:     geometry.Vector3FromArray(raw[4]),
		Width:  sc.Width,
		Height: sc.Height,
	}, nil
}

// LoadScene decodes a scene and returns a Host holding its columns.
func LoadScene(r io.Reader) (*Host, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	h := New()
	for i, sc := range s.Columns {
		c, err := sc.column()
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		id := h.AddColumn(c, sc.Active == nil || *sc.Active)
		if sc.Name != "" {
			h.elements[id].Name = sc.Name
		}
	}
	return h, nil
}

func LoadSceneFile(path string) (*Host, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScene(f)
}
