package xerrfile

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/omeyang/xerrlog/pkg/observability/xerrfile"

	metricWriteTotal    = "xerrfile.write.total"
	metricWriteDuration = "xerrfile.write.duration"

	resultOK    = "ok"
	resultError = "error"
)

// observer 写入调用的指标与追踪。
type observer struct {
	tracer   trace.Tracer
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

func newObserver(tp trace.TracerProvider, mp metric.MeterProvider) (*observer, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	total, err := meter.Int64Counter(
		metricWriteTotal,
		metric.WithDescription("error files written"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xerrfile: create counter failed: %w", err)
	}
	duration, err := meter.Float64Histogram(
		metricWriteDuration,
		metric.WithDescription("error file write duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("xerrfile: create histogram failed: %w", err)
	}

	return &observer{
		tracer:   tp.Tracer(instrumentationName),
		total:    total,
		duration: duration,
	}, nil
}

// write 一次写入调用的观测。
type write struct {
	o      *observer
	span   trace.Span
	ctx    context.Context
	format Format
	start  time.Time
}

func (o *observer) start(ctx context.Context, format Format) (context.Context, *write) {
	ctx, span := o.tracer.Start(ctx, "xerrfile.Log"+format.spanSuffix(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("format", string(format))),
	)
	return ctx, &write{o: o, span: span, ctx: ctx, format: format, start: time.Now()}
}

func (w *write) end(path string, err error) {
	result := resultOK
	if err != nil {
		result = resultError
		w.span.RecordError(err)
		w.span.SetStatus(codes.Error, err.Error())
	} else {
		w.span.SetAttributes(attribute.String("path", path))
		w.span.SetStatus(codes.Ok, "")
	}
	w.span.End()

	// 请求 ctx 取消后仍需记录失败指标
	ctx := context.WithoutCancel(w.ctx)
	attrs := metric.WithAttributes(
		attribute.String("format", string(w.format)),
		attribute.String("result", result),
	)
	w.o.total.Add(ctx, 1, attrs)
	w.o.duration.Record(ctx, time.Since(w.start).Seconds(), attrs)
}
