package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	tel := NewTelemetry()
	ctx := context.Background()

	assert.Empty(t, TraceID(ctx))

	ctx = tel.SetTraceID(ctx)
	first := tel.GetTraceID(ctx)
	assert.NotEmpty(t, first)

	ctx = tel.SetTraceID(ctx)
	assert.Equal(t, first, tel.GetTraceID(ctx), "existing trace id is kept")
}
