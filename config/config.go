// Package config loads the settings of a line graph from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/linechart"
	"github.com/midbel/linechart/canvas"
	"gopkg.in/yaml.v3"
)

const (
	FormatSVG = canvas.FormatSVG
	FormatPNG = canvas.FormatPNG
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

var ErrConfig = errors.New("invalid configuration")

type Size struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

// Config describes the surface a graph is drawn on and the requests sent to
// its setters. Sections left out keep the defaults of the graph.
type Config struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PixelRatio float64 `yaml:"pixel_ratio"`
	Format     string  `yaml:"format"`

	Size       *Size            `yaml:"size,omitempty"`
	MaxXLabels *int             `yaml:"max_x_labels,omitempty"`
	Titles     map[string]any   `yaml:"titles,omitempty"`
	Colors     []map[string]any `yaml:"colors,omitempty"`
	Font       map[string]any   `yaml:"font,omitempty"`
}

func Default() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		PixelRatio: 1,
		Format:     FormatSVG,
	}
}

// Load reads the configuration stored in path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault returns the default configuration when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the surface part of the configuration. Settings requests
// are checked by the graph when applied.
func (c *Config) Validate() error {
	var invalid []string
	if c.Width <= 0 {
		invalid = append(invalid, "width")
	}
	if c.Height <= 0 {
		invalid = append(invalid, "height")
	}
	if c.PixelRatio <= 0 {
		invalid = append(invalid, "pixel_ratio")
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s must be positive", ErrConfig, strings.Join(invalid, ", "))
	}
	switch c.Format = strings.ToLower(c.Format); c.Format {
	case FormatSVG, FormatPNG:
	default:
		return fmt.Errorf("%w: %s: unsupported format", ErrConfig, c.Format)
	}
	return nil
}

// Apply sends every section of the configuration to the setters of g. It
// stops at the first section rejected by g.
func (c *Config) Apply(g *linechart.Graph) error {
	if c.Titles != nil {
		if err := g.SetAxisTitles(c.Titles); err != nil {
			return fmt.Errorf("titles: %w", err)
		}
	}
	if c.Colors != nil {
		if err := g.SetColors(c.Colors); err != nil {
			return fmt.Errorf("colors: %w", err)
		}
	}
	if c.Font != nil {
		if err := g.SetFontSettings(c.Font); err != nil {
			return fmt.Errorf("font: %w", err)
		}
	}
	if c.Size != nil {
		if err := g.SetSize(c.Size.Width, c.Size.Height); err != nil {
			return fmt.Errorf("size: %w", err)
		}
	}
	if c.MaxXLabels != nil {
		if err := g.SetMaxXLabels(*c.MaxXLabels); err != nil {
			return fmt.Errorf("max_x_labels: %w", err)
		}
	}
	return nil
}

// NewGraph creates the surface described by the configuration and a graph
// drawing on it with every section applied.
func (c *Config) NewGraph() (*linechart.Graph, canvas.Surface, error) {
	surface, err := canvas.New(c.Format, c.Width, c.Height, c.PixelRatio)
	if err != nil {
		return nil, nil, err
	}
	g, err := linechart.New(surface)
	if err != nil {
		return nil, nil, err
	}
	if err := c.Apply(g); err != nil {
		return nil, nil, err
	}
	return g, surface, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
