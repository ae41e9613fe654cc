package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"filmlens/internal/services"
)

func TestConsoleHandlerPromotesComponent(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("movies loaded", String(FieldComponent, "ingest"), Int("rows", 12))

	line := buf.String()
	if !strings.Contains(line, "[ingest]") {
		t.Fatalf("expected component prefix in %q", line)
	}
	if !strings.Contains(line, "rows=12") {
		t.Fatalf("expected rows attr in %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not repeat as attr in %q", line)
	}
}

func TestConsoleHandlerQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	logger.Warn("unresolved country", String("raw", "north atlantis"))

	if !strings.Contains(buf.String(), `raw="north atlantis"`) {
		t.Fatalf("expected quoted value in %q", buf.String())
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be suppressed: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn record should appear: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	ctx := services.WithRunID(context.Background(), "run-123")
	WithContext(ctx, logger).Info("refresh complete")

	if !strings.Contains(buf.String(), "run_id=run-123") {
		t.Fatalf("expected run_id attr in %q", buf.String())
	}
}
