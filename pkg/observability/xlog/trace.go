package xlog

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// traceHandler 从 context 提取 OpenTelemetry span 信息并注入 trace_id/span_id。
// ctx 中没有有效 span 时原样透传。
type traceHandler struct {
	base slog.Handler
}

// NewTraceHandler 包装 base，为每条记录注入当前 span 的 trace_id/span_id。
func NewTraceHandler(base slog.Handler) (slog.Handler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	return &traceHandler{base: base}, nil
}

func (h *traceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle 根据 slog 契约，修改前先 Clone record。
func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r = r.Clone()
		r.AddAttrs(
			slog.String(KeyTraceID, sc.TraceID().String()),
			slog.String(KeySpanID, sc.SpanID().String()),
		)
	}
	return h.base.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{base: h.base.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{base: h.base.WithGroup(name)}
}
