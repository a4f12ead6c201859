// Package config loads the sign's YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samisabik/flipdot/internal/hanover"
)

type Font struct {
	Path string  `yaml:"path"` // TTF file; empty selects the builtin face
	Size float64 `yaml:"size"`
}

type Input struct {
	Chip       string `yaml:"chip"` // e.g. gpiochip0
	Line       int    `yaml:"line"`
	DebounceMs int    `yaml:"debounce_ms"`
}

type Feed struct {
	URL    string `yaml:"url"`
	Prefix string `yaml:"prefix"`
}

type Config struct {
	Port       string `yaml:"port"`
	Baud       int    `yaml:"baud"`
	Address    int    `yaml:"address"`
	Height     int    `yaml:"height"`
	Width      int    `yaml:"width"`
	ScrollStep int    `yaml:"scroll_step"`
	MarginMs   int    `yaml:"margin_ms"`

	Font  Font  `yaml:"font,omitempty"`
	Input Input `yaml:"input,omitempty"`
	Feed  Feed  `yaml:"feed,omitempty"`
}

// Default returns the configuration for the prototypical panel: a 7x84
// sign at address 2 on a 4800 baud RS-485 adapter.
func Default() *Config {
	return &Config{
		Port:       "/dev/ttyUSB0",
		Baud:       4800,
		Address:    2,
		Height:     7,
		Width:      84,
		ScrollStep: 1,
		MarginMs:   30,
		Font:       Font{Size: 7},
		Input:      Input{Chip: "gpiochip0", Line: 5, DebounceMs: 20},
	}
}

// Load reads path over the defaults, so absent keys keep their default
// values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects configurations the hardware cannot honor. Nothing is
// clamped; a bad value is fatal at startup.
func (c *Config) Validate() error {
	if c.Address < 0 || c.Address > hanover.MaxAddress {
		return fmt.Errorf("config: address %d out of range 0-%d", c.Address, hanover.MaxAddress)
	}
	if c.Height < 1 || c.Width < 1 {
		return fmt.Errorf("config: invalid panel geometry %dx%d", c.Height, c.Width)
	}
	if c.Baud < 1 {
		return fmt.Errorf("config: invalid baud rate %d", c.Baud)
	}
	if c.ScrollStep < 1 {
		return fmt.Errorf("config: scroll_step %d, must be at least 1", c.ScrollStep)
	}
	if c.MarginMs < 0 {
		return fmt.Errorf("config: negative margin_ms %d", c.MarginMs)
	}
	return nil
}

// Margin returns the frame margin as a duration.
func (c *Config) Margin() time.Duration {
	return time.Duration(c.MarginMs) * time.Millisecond
}

// Debounce returns the input debounce period as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Input.DebounceMs) * time.Millisecond
}
