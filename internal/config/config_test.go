package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"address high", func(c *Config) { c.Address = 16 }},
		{"address negative", func(c *Config) { c.Address = -1 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero baud", func(c *Config) { c.Baud = 0 }},
		{"zero step", func(c *Config) { c.ScrollStep = 0 }},
		{"negative margin", func(c *Config) { c.MarginMs = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("baud: 9600\naddress: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Baud != 9600 || c.Address != 3 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	// Keys absent from the file keep their defaults.
	if c.Width != 84 || c.ScrollStep != 1 {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Port = "/dev/ttyUSB1"
	c.MarginMs = 45
	if err := Save(path, c); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Port != c.Port || got.MarginMs != c.MarginMs {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
