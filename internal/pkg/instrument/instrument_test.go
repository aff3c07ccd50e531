package instrument

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
)

func TestNewExporters_Insecure(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Act
	exp, err := newExporters(ctx, &Config{OTLPEndpoint: "127.0.0.1:4317"})

	// Assert
	require.NoError(t, err)
	assert.IsType(t, &otlptrace.Exporter{}, exp.trace)
	assert.NotNil(t, exp.metric)
	assert.NotNil(t, exp.log)

	_ = exp.trace.Shutdown(ctx)
	_ = exp.metric.Shutdown(ctx)
	_ = exp.log.Shutdown(ctx)
}
