package submit

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/regform/internal/registration"
	"github.com/zjrosen/regform/internal/tracing"
)

type traced struct {
	next   Submitter
	tracer trace.Tracer
}

// WithTracing wraps each submission in a span.
func WithTracing(next Submitter, tracer trace.Tracer) Submitter {
	return traced{next: next, tracer: tracer}
}

func (t traced) Submit(ctx context.Context, sub registration.Submission) (Receipt, error) {
	ctx, span := t.tracer.Start(ctx, tracing.SpanSubmit,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrName, sub.Name),
			attribute.String(tracing.AttrDepartment, sub.Department),
			attribute.String(tracing.AttrRegNumber, sub.RegNumber),
			attribute.String(tracing.AttrStateOfOrigin, sub.StateOfOrigin.String()),
			attribute.Int(tracing.AttrAge, sub.Age),
		))
	defer span.End()

	receipt, err := t.next.Submit(ctx, sub)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return receipt, err
	}
	span.SetAttributes(attribute.String(tracing.AttrReceiptID, receipt.ID.String()))
	span.AddEvent(tracing.EventAccepted)
	span.SetStatus(codes.Ok, "")
	return receipt, nil
}
