package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEvent is the standardized structured logging key for event codes.
	FieldEvent = "event"
	// FieldFile is the standardized structured logging key for input file names.
	FieldFile = "file"
	// FieldRow is the standardized structured logging key for 1-based CSV row numbers.
	FieldRow = "row"
	// FieldContact is the standardized structured logging key for contact identity keys.
	FieldContact = "contact"
	// FieldRunID is the standardized structured logging key for batch run identifiers.
	FieldRunID = "run_id"
	// FieldErrorHint is the standardized structured logging key for recovery hints.
	FieldErrorHint = "error_hint"
)

type contextKey int

const (
	runIDContextKey contextKey = iota
	eventContextKey
)

// WithRunID stores a batch run identifier on the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDContextKey, runID)
}

// RunIDFromContext extracts the batch run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDContextKey).(string)
	return id, ok && id != ""
}

// WithEvent stores the event code being processed on the context.
func WithEvent(ctx context.Context, code string) context.Context {
	if code == "" {
		return ctx
	}
	return context.WithValue(ctx, eventContextKey, code)
}

// EventFromContext extracts the event code, if present.
func EventFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	code, ok := ctx.Value(eventContextKey).(string)
	return code, ok && code != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if code, ok := EventFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldEvent, code))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
