// Package config holds the startup configuration of the grid: its size,
// the strategy cycle and the layout used for output.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/neighbor"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	// Number of cells on one side, a power of two
	Dim uint `default:"8" validate:"min=1" json:"dim" yaml:"dim"`
	// Strategies to cycle through, e.g. "SharesBitsAt(WholeGrid)".
	// Empty means the default cycle of the grid.
	Cycle []string `validate:"dive,required" json:"cycle,omitempty" yaml:"cycle,omitempty"`
	// Radius of the WithinSequence strategy when selected without one
	Window uint `default:"4" json:"window" yaml:"window"`
	Layout Layout `json:"layout" yaml:"layout"`
}

type Layout struct {
	// Width and height of a cell
	CellSize int64 `default:"60" validate:"min=1" json:"cellSize" yaml:"cellSize"`
	// Space between cells
	Padding int64 `default:"6" validate:"min=0" json:"padding" yaml:"padding"`
	// Maximum width of a WKT line, 0 for no truncation
	MaxWktLen uint `default:"0" json:"maxWktLen" yaml:"maxWktLen"`
}

// Default returns the configuration used without a config file
func Default() Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(err)
	}
	return c
}

// Load reads a .json, .yaml or .yml file
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return c, fmt.Errorf("could not read config file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		return c, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return c, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	// an empty YAML document never reaches UnmarshalYAML
	return c, c.Validate()
}

func (c *Config) UnmarshalJSON(data []byte) error {
	// plain has the same fields without this method, to avoid recursion
	type plain Config
	p := (*plain)(c)
	if err := defaults.Set(p); err != nil {
		return err
	}
	unknown, err := marshmallow.Unmarshal(data, p, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		unknownKeys := maps.Keys(unknown)
		slices.Sort(unknownKeys)
		return fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, unknownKeys)
	}
	return c.Validate()
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type plain Config
	p := (*plain)(c)
	if err := defaults.Set(p); err != nil {
		return err
	}
	if err := node.Decode(p); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks the struct tags and whether the grid and cycle fit together
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	g, err := grid.New(c.Dim)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err = c.StrategyCycle(g); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Grid returns the configured grid
func (c *Config) Grid() (grid.Grid, error) {
	return grid.New(c.Dim)
}

// StrategyCycle parses the configured cycle for g
func (c *Config) StrategyCycle(g grid.Grid) (neighbor.Cycle, error) {
	if len(c.Cycle) == 0 {
		return neighbor.DefaultCycle(g.Bits)
	}
	steps := make([]neighbor.Strategy, 0, len(c.Cycle))
	for _, s := range c.Cycle {
		step, err := neighbor.ParseStrategy(s)
		if err != nil {
			return neighbor.Cycle{}, err
		}
		steps = append(steps, step)
	}
	return neighbor.NewCycle(g.Bits, steps...)
}
