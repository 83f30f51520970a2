package config

import (
	"os"
	"path/filepath"
	"testing"

	"tabshell/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabshell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	route, err := cfg.Route()
	require.NoError(t, err)
	assert.Equal(t, nav.RouteMapView, route)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	path := writeConfig(t, `
start_route: /social
mouse: false
log:
  file: /tmp/tabshell.log
  level: debug
telemetry:
  endpoint: localhost:4318
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/social", cfg.StartRoute)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "/tmp/tabshell.log", cfg.Log.File)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "tabshell", cfg.Telemetry.ServiceName, "unset keys keep defaults")

	level, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_SERVICE_NAME", "shell-dev")
	path := writeConfig(t, "telemetry:\n  endpoint: localhost:4318\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "shell-dev", cfg.Telemetry.ServiceName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "start_route: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestLoad_UnknownStartRoute(t *testing.T) {
	_, err := Load(writeConfig(t, "start_route: /map\n"))
	require.ErrorIs(t, err, nav.ErrUnknownRoute)
	assert.Contains(t, err.Error(), "start_route")
}

func TestValidate_BadLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}
