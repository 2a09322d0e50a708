// Package tracing wraps the engine's render-entry diff and commit
// pipeline in OpenTelemetry spans, with a child span per component render
// started from the Render hook, which fires both during a render-entry
// diff and on the scheduler's re-render path. Grounded on the teacher's
// pkg/middleware/otel.go: an options-style tracer config, one span per
// unit of work, error/status recording, and a no-op default when tracing
// isn't configured.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumenjs/lumen"
)

const defaultTracerName = "lumen"

// Config configures the tracing middleware.
type Config struct {
	// TracerName names the tracer (default: "lumen").
	TracerName string
	// Tracer overrides the tracer instance entirely; if nil, one is
	// looked up from the global otel provider using TracerName.
	Tracer trace.Tracer
}

// Option configures a Config.
type Option func(*Config)

// WithTracerName overrides the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) { c.TracerName = name }
}

// WithTracer overrides the tracer instance.
func WithTracer(t trace.Tracer) Option {
	return func(c *Config) { c.Tracer = t }
}

// Middleware installs span-producing Option hooks (lumen.render,
// lumen.commit, and a per-component lumen.component.render span) into o,
// chaining any hooks already present.
func Middleware(o *lumen.Options, opts ...Option) {
	config := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(config.TracerName)
	}

	ctx := context.Background()
	var rootSpan trace.Span

	prevRoot := o.Root
	o.Root = func(v *lumen.VNode, container any) {
		if prevRoot != nil {
			prevRoot(v, container)
		}
		ctx, rootSpan = tracer.Start(ctx, "lumen.render")
	}

	var renderSpans []trace.Span
	prevRender := o.Render
	o.Render = func(v *lumen.VNode) {
		if prevRender != nil {
			prevRender(v)
		}
		_, span := tracer.Start(ctx, "lumen.component.render",
			trace.WithAttributes(attribute.String("component", lumen.ComponentLabel(v))))
		renderSpans = append(renderSpans, span)
	}

	prevDiffed := o.Diffed
	o.Diffed = func(v *lumen.VNode) {
		if prevDiffed != nil {
			prevDiffed(v)
		}
		if v.Kind != lumen.KindComponent || len(renderSpans) == 0 {
			return
		}
		last := len(renderSpans) - 1
		renderSpans[last].End()
		renderSpans = renderSpans[:last]
	}

	prevCommit := o.Commit
	o.Commit = func(root *lumen.VNode, pendingEffects int) {
		if prevCommit != nil {
			prevCommit(root, pendingEffects)
		}
		if rootSpan == nil {
			return
		}
		_, commitSpan := tracer.Start(ctx, "lumen.commit",
			trace.WithAttributes(attribute.Int("pending_effects", pendingEffects)))
		commitSpan.SetStatus(codes.Ok, "")
		commitSpan.End()
		rootSpan.End()
		rootSpan = nil
	}
}
