package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapture_DisabledRunsUntraced(t *testing.T) {
	tracer := NewTracer(false)

	called := false
	err := tracer.Capture(context.Background(), "op", func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestCapture_PropagatesError(t *testing.T) {
	tracer := NewTracer(false)
	boom := errors.New("boom")

	err := tracer.Capture(context.Background(), "op", func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestAnnotationsAreSafeWithoutSegment(t *testing.T) {
	ctx := context.Background()

	for _, tracer := range []*Tracer{NewTracer(false), NewTracer(true)} {
		assert.NotPanics(t, func() {
			tracer.AddAnnotation(ctx, "propertyId", "usa/anytown/main-street/111")
			tracer.RecordError(ctx, errors.New("boom"))
		})
	}
}
