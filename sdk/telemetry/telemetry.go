// Package telemetry provides request trace ids carried on the context.
package telemetry

import (
	"context"

	"github.com/jrazmi/pollschema/sdk/cryptids"
)

type telKey int

const (
	traceIDKey telKey = iota + 1
)

// NoTrace is reported when a context carries no trace id.
const NoTrace = "--------NOTRACE--------"

type Telemetry struct{}

func NewTelemetry() Telemetry {
	return Telemetry{}
}

// SetTraceID stores a fresh trace id, reusing one already on ctx.
func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(traceIDKey).(string); ok {
		return ctx
	}
	tid, err := cryptids.GenerateID()
	if err != nil {
		return context.WithValue(ctx, traceIDKey, NoTrace)
	}
	return context.WithValue(ctx, traceIDKey, tid)
}

func (t Telemetry) GetTraceID(ctx context.Context) string {
	return TraceID(ctx)
}

// TraceID returns the trace id on ctx, or "" when none was set. It matches
// logger.TraceIDFunc.
func TraceID(ctx context.Context) string {
	v, _ := ctx.Value(traceIDKey).(string)
	return v
}
