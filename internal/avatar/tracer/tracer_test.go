package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shenfen/internal/avatar/tracer"
)

func TestNoopTracerStart(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanAIModel,
		tracer.String(tracer.AttrGender, "female"),
		tracer.Bool("configured", true),
	)

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.String(tracer.AttrFailureClass, "timeout"))
	span.AddEvent(tracer.EventTransition, tracer.Int64(tracer.AttrSeed, 42))
	span.End(nil)
}

func TestNoopTracerSpanEndWithError(t *testing.T) {
	tr := tracer.NewNoop()

	_, span := tr.Start(context.Background(), tracer.SpanProcedural)
	require.NotNil(t, span)

	span.End(errors.New("draw failed"))
}

func TestAttributeConstructors(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		attr := tracer.String("key", "value")
		assert.Equal(t, "key", attr.Key)
		assert.Equal(t, "value", attr.Value)
	})

	t.Run("Bool", func(t *testing.T) {
		attr := tracer.Bool("flag", true)
		assert.Equal(t, "flag", attr.Key)
		assert.Equal(t, true, attr.Value)
	})

	t.Run("Int64", func(t *testing.T) {
		attr := tracer.Int64("seed", 99)
		assert.Equal(t, "seed", attr.Key)
		assert.Equal(t, int64(99), attr.Value)
	})

	t.Run("Duration", func(t *testing.T) {
		attr := tracer.Duration("latency", 150*time.Millisecond)
		assert.Equal(t, "latency", attr.Key)
		assert.Equal(t, int64(150), attr.Value)
	})
}

func TestSpanConstants(t *testing.T) {
	assert.Equal(t, "avatar.ai_model", tracer.SpanAIModel)
	assert.Equal(t, "avatar.procedural_face", tracer.SpanProcedural)
	assert.Equal(t, "avatar.silhouette", tracer.SpanSilhouette)
}
