// Package audit evaluates a page against the fixed table of usability heuristics.
//
// Each rule queries the document, checks a condition and marks the offending elements
// with the rule's severity and a short label. Rules are isolated from one another: a rule
// that errors or panics contributes no issues and the remaining rules still run.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

const tracerName = "heuristicheck/internal/audit"

type Engine struct {
	threshold float64
	logger    *slog.Logger
	tracer    trace.Tracer
	rules     []rule
}

// Option configures an Engine.
type Option func(*Engine)

// WithContrastThreshold overrides DefaultContrastThreshold. Non-positive values are ignored.
func WithContrastThreshold(t float64) Option {
	return func(e *Engine) {
		if t > 0 {
			e.threshold = t
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		threshold: DefaultContrastThreshold,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
		rules:     ruleTable,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Threshold returns the contrast ratio in effect.
func (e *Engine) Threshold() float64 { return e.threshold }

// Run evaluates every enabled rule in id order and returns one Finding per enabled rule.
// Disabled rules are omitted and mark nothing.
func (e *Engine) Run(ctx context.Context, doc *dom.Document, settings domain.Settings) []domain.Finding {
	ctx, span := e.tracer.Start(ctx, "audit.Run", trace.WithAttributes(attribute.String("page.url", doc.URL)))
	defer span.End()

	findings := make([]domain.Finding, 0, len(e.rules))
	for _, r := range e.rules {
		if !settings.Enabled(r.id) {
			continue
		}
		findings = append(findings, e.evaluate(ctx, doc, r))
	}
	span.SetAttributes(attribute.Int("audit.findings", len(findings)))
	return findings
}

func (e *Engine) evaluate(ctx context.Context, doc *dom.Document, r rule) domain.Finding {
	_, span := e.tracer.Start(ctx, "audit.rule", trace.WithAttributes(
		attribute.Int("rule.id", int(r.id)),
		attribute.String("rule.name", r.name),
	))
	defer span.End()

	f := domain.Finding{
		ID:       r.id,
		Name:     r.name,
		Severity: r.severity,
		Status:   domain.StatusPass,
		Issues:   []domain.IssueRecord{},
	}
	ev, err := e.safeEval(doc, r)
	if err != nil {
		e.logger.Warn("rule evaluation failed", "rule", int(r.id), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return f
	}

	if r.label != "" {
		for _, h := range ev.offenders {
			doc.Mark(h, r.severity, r.label)
		}
	}
	for _, c := range ev.checks {
		if !c.pass {
			f.Issues = append(f.Issues, domain.IssueRecord{Description: c.issue, Remedy: c.remedy})
		}
	}
	if len(f.Issues) > 0 {
		f.Status = domain.StatusFail
	}
	span.SetAttributes(attribute.String("rule.status", string(f.Status)), attribute.Int("rule.issues", len(f.Issues)))
	return f
}

func (e *Engine) safeEval(doc *dom.Document, r rule) (ev evaluation, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("rule %d panicked: %v", r.id, p)
		}
	}()
	return r.eval(doc, e.threshold)
}
