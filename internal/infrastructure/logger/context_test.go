package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func devLogger(t *testing.T) *zap.Logger {
	t.Helper()
	log, err := NewForEnvironment("development")
	require.NoError(t, err)
	return log
}

// bufferedLogger writes JSON entries into buf so assertions can inspect them
func bufferedLogger(buf *bytes.Buffer) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(buf), zapcore.DebugLevel))
}

func TestContextCarriesLogger(t *testing.T) {
	t.Run("round-trips a logger through the context", func(t *testing.T) {
		ctx := WithContext(context.Background(), devLogger(t))
		assert.NotNil(t, FromContext(ctx))
	})

	t.Run("falls back to a no-op logger when none is stored", func(t *testing.T) {
		log := FromContext(context.Background())
		require.NotNil(t, log)
		assert.NotPanics(t, func() {
			log.Info("order accepted")
			log.With(zap.String("order_number", "ORD-1A2B3C4D")).Warn("low stock")
		})
	})

	t.Run("ignores a value of the wrong type under the logger key", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")
		log := FromContext(ctx)
		require.NotNil(t, log)
		assert.NotPanics(t, func() { log.Info("still fine") })
	})

	t.Run("uses distinct context keys", func(t *testing.T) {
		assert.NotEqual(t, LoggerKey, RequestIDKey)
		assert.NotEqual(t, RequestIDKey, UserIDKey)
		assert.NotEqual(t, LoggerKey, UserIDKey)
	})
}

func TestRequestScopedFields(t *testing.T) {
	t.Run("stores and reads the request id", func(t *testing.T) {
		ctx, log := WithRequestID(context.Background(), devLogger(t), "req-0a1b")
		assert.NotNil(t, log)
		assert.Equal(t, "req-0a1b", GetRequestID(ctx))
	})

	t.Run("stores and reads the user id", func(t *testing.T) {
		ctx, log := WithUserID(context.Background(), devLogger(t), "maria.santos")
		assert.NotNil(t, log)
		assert.Equal(t, "maria.santos", GetUserID(ctx))
	})

	t.Run("returns empty strings from a bare context", func(t *testing.T) {
		assert.Empty(t, GetRequestID(context.Background()))
		assert.Empty(t, GetUserID(context.Background()))
	})

	t.Run("chains request and user enrichment", func(t *testing.T) {
		base := devLogger(t)
		ctx := context.Background()
		ctx, log := WithRequestID(ctx, base, "req-0a1b")
		ctx, log = WithUserID(ctx, log, "maria.santos")

		assert.Equal(t, "req-0a1b", GetRequestID(ctx))
		assert.Equal(t, "maria.santos", GetUserID(ctx))
		assert.NotEqual(t, base, log, "enrichment must produce a child logger")
	})

	t.Run("a second request id replaces the first", func(t *testing.T) {
		log := devLogger(t)
		ctx, _ := WithRequestID(context.Background(), log, "req-first")
		ctx, _ = WithRequestID(ctx, log, "req-second")
		assert.Equal(t, "req-second", GetRequestID(ctx))
	})

	t.Run("stores the enriched logger back into the context", func(t *testing.T) {
		base := devLogger(t)
		ctx, enriched := WithRequestID(context.Background(), base, "req-0a1b")
		assert.NotNil(t, FromContext(ctx))
		assert.NotEqual(t, base, enriched)
	})
}

func TestTraceCorrelation(t *testing.T) {
	// The noop provider hands out spans with invalid contexts, which is
	// exactly what the accessors must tolerate
	startNoopSpan := func() (context.Context, trace.Span) {
		tracer := noop.NewTracerProvider().Tracer("tailoring-test")
		return tracer.Start(context.Background(), "order.create")
	}

	t.Run("returns empty ids without a span", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
		assert.Empty(t, GetSpanID(context.Background()))
	})

	t.Run("returns empty ids for an invalid span context", func(t *testing.T) {
		ctx, span := startNoopSpan()
		defer span.End()

		require.False(t, trace.SpanFromContext(ctx).SpanContext().IsValid())
		assert.Empty(t, GetTraceID(ctx))
		assert.Empty(t, GetSpanID(ctx))
	})

	t.Run("leaves the logger untouched without a valid span", func(t *testing.T) {
		base := zap.NewNop()
		assert.Equal(t, base, WithTraceContext(context.Background(), base))

		ctx, span := startNoopSpan()
		defer span.End()
		assert.Equal(t, base, WithTraceContext(ctx, base))
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("L builds a usable logger from any context", func(t *testing.T) {
		cl := L(context.Background())
		require.NotNil(t, cl)
		assert.NotNil(t, cl.ctx)
		assert.NotNil(t, cl.logger)
	})

	t.Run("L picks up the logger stored in the context", func(t *testing.T) {
		ctx := WithContext(context.Background(), devLogger(t))
		cl := L(ctx)
		require.NotNil(t, cl)
		assert.NotNil(t, cl.logger)
	})

	t.Run("WithLogger uses the provided logger as-is", func(t *testing.T) {
		base := devLogger(t)
		cl := WithLogger(context.Background(), base)
		require.NotNil(t, cl)
		assert.Equal(t, base, cl.logger)
	})

	t.Run("With derives a child logger and keeps the context", func(t *testing.T) {
		var buf bytes.Buffer
		base := bufferedLogger(&buf)
		ctx := context.Background()

		child := WithLogger(ctx, base).With(zap.String("module", "trade"))

		require.NotNil(t, child)
		assert.Equal(t, ctx, child.ctx)
		assert.NotEqual(t, base, child.logger)
	})

	t.Run("all levels log without panicking", func(t *testing.T) {
		cl := WithLogger(context.Background(), zap.NewNop())
		assert.NotPanics(t, func() {
			cl.Debug("measuring")
			cl.Info("cutting")
			cl.Warn("fabric running low")
			cl.Error("stitch failed")
		})
	})

	t.Run("Zap and Sugar expose the underlying logger", func(t *testing.T) {
		cl := WithLogger(context.Background(), zap.NewNop())
		require.NotNil(t, cl.Zap())
		require.NotNil(t, cl.Sugar())
		assert.NotPanics(t, func() {
			cl.Zap().Info("plain")
			cl.Sugar().Infof("order %s", "ORD-1A2B3C4D")
		})
	})

	t.Run("enriches entries with request and user ids from the context", func(t *testing.T) {
		var buf bytes.Buffer
		base := bufferedLogger(&buf)

		ctx := context.Background()
		ctx, _ = WithRequestID(ctx, base, "req-0a1b")
		ctx, _ = WithUserID(ctx, base, "maria.santos")
		ctx = WithContext(ctx, base)

		L(ctx).Info("order accepted", zap.String("order_number", "ORD-1A2B3C4D"))

		output := buf.String()
		assert.Contains(t, output, `"request_id":"req-0a1b"`)
		assert.Contains(t, output, `"user_id":"maria.santos"`)
		assert.Contains(t, output, `"order_number":"ORD-1A2B3C4D"`)
		assert.Contains(t, output, `"msg":"order accepted"`)
	})

	t.Run("reads ids set directly under the context keys", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-aaa")
		ctx = context.WithValue(ctx, UserIDKey, "jose.cruz")

		WithLogger(ctx, bufferedLogger(&buf)).Info("payment recorded")

		output := buf.String()
		assert.Contains(t, output, `"request_id":"req-aaa"`)
		assert.Contains(t, output, `"user_id":"jose.cruz"`)
	})

	t.Run("omits empty context fields entirely", func(t *testing.T) {
		var buf bytes.Buffer
		WithLogger(context.Background(), bufferedLogger(&buf)).Info("receipt printed")

		output := buf.String()
		assert.Contains(t, output, `"msg":"receipt printed"`)
		assert.NotContains(t, output, `"request_id":""`)
		assert.NotContains(t, output, `"user_id":""`)
	})

	t.Run("tolerates a nil underlying logger", func(t *testing.T) {
		cl := &ContextLogger{ctx: context.Background(), logger: nil}
		assert.NotPanics(t, func() { cl.Info("still logs") })
	})

	t.Run("With calls chain", func(t *testing.T) {
		cl := WithLogger(context.Background(), zap.NewNop()).
			With(zap.String("module", "workshop")).
			With(zap.String("task", "hemming"))

		require.NotNil(t, cl)
		assert.NotPanics(t, func() { cl.Info("chained") })
	})
}
