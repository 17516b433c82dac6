package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, p)
	// Shutdown on a nil provider is a no-op.
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), "localhost:4318", "")
	require.NoError(t, err)
	require.NotNil(t, p)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, p.Shutdown(ctx))
}

func TestEndSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := tp.Tracer("test")

	_, ok := tracer.Start(context.Background(), "ok")
	EndSpan(ok, 200, nil)

	_, failed := tracer.Start(context.Background(), "failed")
	EndSpan(failed, 0, errors.New("boom"))

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	var sawStatus bool
	for _, kv := range spans[0].Attributes() {
		if kv.Key == AttrHTTPStatus {
			sawStatus = true
			assert.Equal(t, int64(200), kv.Value.AsInt64())
		}
	}
	assert.True(t, sawStatus, "expected http.status_code attribute")

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "boom", spans[1].Status().Description)
	assert.Empty(t, spans[1].Attributes())
	require.Len(t, spans[1].Events(), 1)
	assert.Equal(t, "exception", spans[1].Events()[0].Name)
}
