// Package config loads tabshell settings from an optional YAML file and the
// standard OpenTelemetry environment variables.
package config

import (
	"fmt"
	"os"

	"tabshell/internal/nav"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML structure.
type Config struct {
	StartRoute string          `yaml:"start_route"`
	Mouse      bool            `yaml:"mouse"`
	Log        LogConfig       `yaml:"log"`
	Telemetry  TelemetryConfig `yaml:"telemetry"`
}

// LogConfig controls the file logger. An empty File disables logging.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// TelemetryConfig controls trace export. An empty Endpoint disables export.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		StartRoute: "/",
		Mouse:      true,
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "tabshell",
			Insecure:    true,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file; a path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Telemetry.ServiceName = v
	}
}

// Validate checks the fields that are parsed later.
func (c Config) Validate() error {
	if _, err := nav.ParseRoute(c.StartRoute); err != nil {
		return fmt.Errorf("config: start_route: %w", err)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// Route returns the parsed start route.
func (c Config) Route() (nav.Route, error) {
	return nav.ParseRoute(c.StartRoute)
}

// ZapLevel parses Level; empty means info.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(l.Level)
}
