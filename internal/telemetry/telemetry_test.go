package telemetry

import (
	"context"
	"testing"

	"tabshell/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	p, err := New(context.Background(), config.TelemetryConfig{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	_, span := p.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_EnabledWithEndpoint(t *testing.T) {
	p, err := New(context.Background(), config.TelemetryConfig{
		Endpoint: "localhost:4318",
		Insecure: true,
	})
	require.NoError(t, err)
	assert.True(t, p.Enabled())

	// Left unended so shutdown has nothing to send.
	_, span := p.Tracer("test").Start(context.Background(), "recorded")
	assert.True(t, span.SpanContext().IsValid())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer("x"))
	assert.NoError(t, p.Shutdown(context.Background()))
}
