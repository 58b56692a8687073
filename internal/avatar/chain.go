package avatar

import (
	"context"
	"log/slog"
	"time"

	"shenfen/internal/avatar/metrics"
	"shenfen/internal/avatar/normalize"
	"shenfen/internal/avatar/tracer"
	"shenfen/pkg/circuit"
)

const (
	defaultWidth  = 500
	defaultHeight = 670
)

// chainState enumerates the fallback machine's states. Transitions run
// strictly downward; silhouette is terminal and total.
type chainState int

const (
	stateAIModel chainState = iota
	stateProceduralFace
	stateSilhouette
)

// Chain walks the backend fallback order for one portrait: the AI service
// when configured and its circuit is closed, the deterministic local face,
// and finally the fixed silhouette. A result's Backend field always names
// the state that actually produced the image, so a filtered or failed AI
// response can never masquerade as an AI portrait.
type Chain struct {
	ai          AIBackend
	face        FaceRenderer
	placeholder Placeholder
	normalizer  Normalizer
	breaker     *circuit.Breaker
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      tracer.Tracer
}

// Option configures a Chain.
type Option func(*Chain)

// WithAIBackend registers the remote AI service as the preferred backend.
// Without it the chain starts at the procedural face.
func WithAIBackend(ai AIBackend) Option {
	return func(c *Chain) {
		c.ai = ai
	}
}

// WithBreaker guards the AI backend with a circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Chain) {
		c.breaker = b
	}
}

// WithNormalizer replaces the default normalization applied to AI images.
func WithNormalizer(n Normalizer) Option {
	return func(c *Chain) {
		c.normalizer = n
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Chain) {
		c.logger = l
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Chain) {
		c.metrics = m
	}
}

// WithTracer attaches a tracer emitting one span per backend attempt.
func WithTracer(t tracer.Tracer) Option {
	return func(c *Chain) {
		c.tracer = t
	}
}

// NewChain creates the fallback chain. The local renderers are required;
// nil values are a programming error and panic at startup.
func NewChain(face FaceRenderer, placeholder Placeholder, opts ...Option) *Chain {
	if face == nil {
		panic("avatar.NewChain: face renderer is required")
	}
	if placeholder == nil {
		panic("avatar.NewChain: placeholder renderer is required")
	}
	c := &Chain{
		face:        face,
		placeholder: placeholder,
		normalizer:  normalize.New(),
		tracer:      tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate produces one portrait. It never fails: every transition falls
// through to a lower backend and the silhouette terminal state is total.
func (c *Chain) Generate(ctx context.Context, req Request) Result {
	if req.Width <= 0 {
		req.Width = defaultWidth
	}
	if req.Height <= 0 {
		req.Height = defaultHeight
	}

	state := stateAIModel
	for {
		switch state {
		case stateAIModel:
			png, err := c.tryAIModel(ctx, req)
			if err == nil {
				return Result{PNG: png, Backend: BackendAIModel}
			}
			c.logTransition(ctx, BackendAIModel, BackendProceduralFace, err)
			state = stateProceduralFace

		case stateProceduralFace:
			png, err := c.tryProcedural(ctx, req)
			if err == nil {
				return Result{PNG: png, Backend: BackendProceduralFace}
			}
			c.logTransition(ctx, BackendProceduralFace, BackendSilhouette, err)
			state = stateSilhouette

		default:
			return Result{PNG: c.drawSilhouette(ctx, req), Backend: BackendSilhouette}
		}
	}
}

// tryAIModel attempts the remote backend. Skips (unconfigured backend, open
// circuit) are reported as unavailable without counting as attempts; real
// attempts record their outcome against the circuit breaker.
func (c *Chain) tryAIModel(ctx context.Context, req Request) ([]byte, error) {
	if c.ai == nil {
		return nil, NewBackendError(BackendAIModel, FailureUnavailable, "backend not configured", nil)
	}
	if c.breaker != nil && !c.breaker.Allow() {
		return nil, NewBackendError(BackendAIModel, FailureUnavailable, "circuit open", nil)
	}

	_, span := c.tracer.Start(ctx, tracer.SpanAIModel, c.spanAttrs(req)...)
	if c.metrics != nil {
		c.metrics.IncrementAttempt(string(BackendAIModel))
	}

	start := time.Now()
	raw, err := c.ai.Generate(ctx, req)
	if c.metrics != nil {
		c.metrics.ObserveAIDuration(time.Since(start).Seconds() * 1000)
	}

	if err == nil {
		raw, err = c.normalizer.Normalize(raw, req.Width, req.Height)
		if err != nil {
			err = NewBackendError(BackendAIModel, FailureBadPayload, "image normalization failed", err)
		}
	}

	if err != nil {
		class := string(ClassOf(err))
		span.SetAttributes(tracer.String(tracer.AttrFailureClass, class))
		span.AddEvent(tracer.EventTransition, tracer.String("to", string(BackendProceduralFace)))
		span.End(err)
		if c.metrics != nil {
			c.metrics.IncrementOutcome(string(BackendAIModel), class)
		}
		c.recordBreakerFailure(ctx, err)
		return nil, err
	}

	span.End(nil)
	if c.metrics != nil {
		c.metrics.IncrementOutcome(string(BackendAIModel), "ok")
	}
	c.recordBreakerSuccess(ctx)
	return raw, nil
}

func (c *Chain) tryProcedural(ctx context.Context, req Request) ([]byte, error) {
	_, span := c.tracer.Start(ctx, tracer.SpanProcedural, c.spanAttrs(req)...)
	if c.metrics != nil {
		c.metrics.IncrementAttempt(string(BackendProceduralFace))
	}

	png, err := c.face.Render(req)
	if err != nil {
		err = NewBackendError(BackendProceduralFace, FailureInternal, "procedural drawing failed", err)
		span.SetAttributes(tracer.String(tracer.AttrFailureClass, string(ClassOf(err))))
		span.AddEvent(tracer.EventTransition, tracer.String("to", string(BackendSilhouette)))
		span.End(err)
		if c.metrics != nil {
			c.metrics.IncrementOutcome(string(BackendProceduralFace), string(ClassOf(err)))
		}
		return nil, err
	}

	span.End(nil)
	if c.metrics != nil {
		c.metrics.IncrementOutcome(string(BackendProceduralFace), "ok")
	}
	return png, nil
}

func (c *Chain) drawSilhouette(ctx context.Context, req Request) []byte {
	_, span := c.tracer.Start(ctx, tracer.SpanSilhouette, c.spanAttrs(req)...)
	defer span.End(nil)

	if c.metrics != nil {
		c.metrics.IncrementAttempt(string(BackendSilhouette))
		c.metrics.IncrementOutcome(string(BackendSilhouette), "ok")
	}
	return c.placeholder.Render(req)
}

func (c *Chain) recordBreakerFailure(ctx context.Context, err error) {
	if c.breaker == nil {
		return
	}
	if _, change := c.breaker.RecordFailure(); change.Opened {
		if c.logger != nil {
			c.logger.WarnContext(ctx, "avatar circuit opened",
				"circuit", c.breaker.Name(),
				"error", err,
			)
		}
		if c.metrics != nil {
			c.metrics.IncrementBreakerTransition("open")
		}
	}
}

func (c *Chain) recordBreakerSuccess(ctx context.Context) {
	if c.breaker == nil {
		return
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		if c.logger != nil {
			c.logger.InfoContext(ctx, "avatar circuit closed",
				"circuit", c.breaker.Name(),
			)
		}
		if c.metrics != nil {
			c.metrics.IncrementBreakerTransition("closed")
		}
	}
}

func (c *Chain) logTransition(ctx context.Context, from, to Backend, err error) {
	if c.logger == nil {
		return
	}
	c.logger.InfoContext(ctx, "avatar backend transition",
		"from", string(from),
		"to", string(to),
		"failure_class", string(ClassOf(err)),
		"error", err,
	)
}

func (c *Chain) spanAttrs(req Request) []tracer.Attribute {
	return []tracer.Attribute{
		tracer.String(tracer.AttrGender, string(req.Gender)),
		tracer.String(tracer.AttrAgeBucket, string(req.AgeBucket)),
		tracer.Int64(tracer.AttrSeed, req.Seed),
		tracer.Int64(tracer.AttrWidth, int64(req.Width)),
		tracer.Int64(tracer.AttrHeight, int64(req.Height)),
	}
}
