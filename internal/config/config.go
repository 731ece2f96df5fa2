// Package config loads the detailer settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rok-office/cwdetails/connector"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel          string  `yaml:"log_level"`
	VerticalTolerance float64 `yaml:"vertical_tolerance"`
	Dowel             Dowel   `yaml:"dowel"`
	Names             Names   `yaml:"names"`
}

// Dowel describes the steel dowel connecting the web plate to the column.
type Dowel struct {
	Diameter float64 `yaml:"diameter"`
	// Connector is the host catalog entry used to create the dowel.
	Connector string `yaml:"connector"`
	// Inset is the distance from the top of the web plate to the dowel axis.
	Inset float64 `yaml:"inset"`
}

// Names are the element names written to the host.
type Names struct {
	Dowel    string `yaml:"dowel"`
	WebPlate string `yaml:"web_plate"`
}

func Default() Config {
	return Config{
		LogLevel:          "info",
		VerticalTolerance: 0.001,
		Dowel: Dowel{
			Diameter:  8,
			Connector: "Duebel_8",
			Inset:     10,
		},
		Names: Names{
			Dowel:    "SDü",
			WebPlate: "FLA",
		},
	}
}

// Load decodes YAML on top of Default, so omitted keys keep their defaults.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Load(f)
}

func (c Config) Validate() error {
	if c.VerticalTolerance < 0 {
		return fmt.Errorf("%w: vertical_tolerance must not be negative", ErrInvalidConfig)
	}
	if c.Dowel.Diameter <= 0 {
		return fmt.Errorf("%w: dowel.diameter must be positive", ErrInvalidConfig)
	}
	if c.Dowel.Connector == "" {
		return fmt.Errorf("%w: dowel.connector is empty", ErrInvalidConfig)
	}
	if c.Dowel.Inset < 0 {
		return fmt.Errorf("%w: dowel.inset must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Settings maps the dowel section onto the planner settings.
func (c Config) Settings() connector.Settings {
	return connector.Settings{
		VerticalTolerance: c.VerticalTolerance,
		DowelDiameter:     c.Dowel.Diameter,
		DowelConnector:    c.Dowel.Connector,
		DowelInset:        c.Dowel.Inset,
	}
}

func (c Config) ElementNames() connector.Names {
	return connector.Names{
		WebPlate: c.Names.WebPlate,
		Dowel:    c.Names.Dowel,
	}
}
