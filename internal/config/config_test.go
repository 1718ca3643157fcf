package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadWritesTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Missing config falls back to defaults and seeds a template.
	def := Default()
	if cfg.Curve.Samples != def.Curve.Samples || cfg.Server.Port != def.Server.Port {
		t.Errorf("got %+v, want defaults", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("template not written: %v", err)
	}

	// A second load reads the template back without error.
	if _, err := Load(dir); err != nil {
		t.Fatalf("reload: %v", err)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "[curve]\nsamples = 50\nbreakeven_tolerance = 1.5\n\n[server]\nport = 9000\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Curve.Samples != 50 {
		t.Errorf("samples = %d, want 50", cfg.Curve.Samples)
	}
	if cfg.Curve.BreakevenTolerance != 1.5 {
		t.Errorf("tolerance = %v, want 1.5", cfg.Curve.BreakevenTolerance)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	// Unset keys keep their defaults.
	if cfg.Curve.LowFactor != 0.5 {
		t.Errorf("low_factor = %v, want 0.5", cfg.Curve.LowFactor)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PAYOFF_PORT", "7777")
	t.Setenv("PAYOFF_LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d, want 7777", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	content := "[curve]\nsamples = 1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected validation error for samples = 1")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero low factor", func(c *Config) { c.Curve.LowFactor = 0 }},
		{"inverted factors", func(c *Config) { c.Curve.HighFactor = 0.2 }},
		{"one sample", func(c *Config) { c.Curve.Samples = 1 }},
		{"negative tolerance", func(c *Config) { c.Curve.BreakevenTolerance = -1 }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
