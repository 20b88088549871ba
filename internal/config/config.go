// Package config loads hlbar's settings from TOML or YAML and watches them
// for changes.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/daviddao/hlbar/internal/area"
	"github.com/daviddao/hlbar/internal/colorclock"
	"github.com/daviddao/hlbar/internal/layout"
	"github.com/daviddao/hlbar/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full hlbar configuration.
type Config struct {
	Bar   BarConfig   `toml:"bar" yaml:"bar"`
	Theme ThemeConfig `toml:"theme" yaml:"theme"`
	Clock ClockConfig `toml:"clock" yaml:"clock"`
	Icons IconsConfig `toml:"icons" yaml:"icons"`
	Log   LogConfig   `toml:"log" yaml:"log"`
}

// BarConfig holds bar geometry. Width only applies to raster output; the
// terminal host sizes bars to the window.
type BarConfig struct {
	Height     int `toml:"height" yaml:"height"`
	ArrowWidth int `toml:"arrow_width" yaml:"arrow_width"`
	Screens    int `toml:"screens" yaml:"screens"`
	CellWidth  int `toml:"cell_width" yaml:"cell_width"`
	Width      int `toml:"width" yaml:"width"`
}

// ThemeConfig holds "#rrggbb" colors.
type ThemeConfig struct {
	Background string `toml:"background" yaml:"background"`
	Highlight  string `toml:"highlight" yaml:"highlight"`
	Normal     string `toml:"normal" yaml:"normal"`
	Low        string `toml:"low" yaml:"low"`
	Focused    string `toml:"focused" yaml:"focused"`
	Urgent     string `toml:"urgent" yaml:"urgent"`
	Divider    string `toml:"divider" yaml:"divider"`
}

type ClockConfig struct {
	Interval Duration `toml:"interval" yaml:"interval"`
	Preset   string   `toml:"preset" yaml:"preset"`
}

// IconsConfig points at the directory holding the layout indicator icons.
type IconsConfig struct {
	Dir string `toml:"dir" yaml:"dir"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Bar: BarConfig{
			Height:     15,
			ArrowWidth: 8,
			Screens:    1,
			CellWidth:  8,
			Width:      1920,
		},
		Theme: ThemeConfig{
			Background: "#1c1c1c",
			Highlight:  "#262626",
			Normal:     "#9e9e9e",
			Low:        "#4e4e4e",
			Focused:    "#3d3dff",
			Urgent:     "#ff7e3d",
			Divider:    "#9e9e9e",
		},
		Clock: ClockConfig{
			Interval: Duration{500 * time.Millisecond},
			Preset:   "default",
		},
		Log: LogConfig{
			Level: "info",
			File:  logging.DefaultLogPath,
		},
	}
}

// Validate reports the first problem found.
func (c *Config) Validate() error {
	sizes := []struct {
		name string
		v    int
	}{
		{"bar.height", c.Bar.Height},
		{"bar.arrow_width", c.Bar.ArrowWidth},
		{"bar.screens", c.Bar.Screens},
		{"bar.cell_width", c.Bar.CellWidth},
		{"bar.width", c.Bar.Width},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, s.name, s.v)
		}
	}

	colors := []struct {
		name, v string
	}{
		{"theme.background", c.Theme.Background},
		{"theme.highlight", c.Theme.Highlight},
		{"theme.normal", c.Theme.Normal},
		{"theme.low", c.Theme.Low},
		{"theme.focused", c.Theme.Focused},
		{"theme.urgent", c.Theme.Urgent},
		{"theme.divider", c.Theme.Divider},
	}
	for _, col := range colors {
		if _, err := colorful.Hex(col.v); err != nil || len(col.v) != 7 {
			return fmt.Errorf("%w: %s %q is not a #rrggbb color", ErrInvalid, col.name, col.v)
		}
	}

	if c.Clock.Interval.Duration <= 0 {
		return fmt.Errorf("%w: clock.interval must be positive", ErrInvalid)
	}
	if _, ok := colorclock.Preset(c.Clock.Preset); !ok {
		return fmt.Errorf("%w: unknown clock.preset %q", ErrInvalid, c.Clock.Preset)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Style returns the area style described by c.
func (c *Config) Style() *area.Style {
	steep, _ := colorclock.Preset(c.Clock.Preset)
	return &area.Style{
		Normal:     c.Theme.Normal,
		Low:        c.Theme.Low,
		Focused:    c.Theme.Focused,
		Urgent:     c.Theme.Urgent,
		ArrowWidth: c.Bar.ArrowWidth,
		IconDir:    c.Icons.Dir,
		Clock:      steep,
	}
}

// Engine returns the layout engine described by c.
func (c *Config) Engine() layout.Engine {
	return layout.Engine{
		ArrowWidth: c.Bar.ArrowWidth,
		Background: c.Theme.Background,
		Highlight:  c.Theme.Highlight,
		Foreground: c.Theme.Normal,
		Divider:    c.Theme.Divider,
	}
}
