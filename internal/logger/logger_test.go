package logger

import (
	"context"
	"log/slog"
	"testing"

	"go.uber.org/fx"
)

func TestNewLoggerLevels(t *testing.T) {
	l := New()
	if l == nil {
		t.Fatal("expected logger, got nil")
	}
	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info level must be enabled")
	}
	if !l.Enabled(context.Background(), slog.LevelError) {
		t.Error("error level must be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level must stay disabled")
	}
	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestModuleProvidesLogger(t *testing.T) {
	var resolved *slog.Logger
	app := fx.New(
		Module,
		fx.Populate(&resolved),
	)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected logger to be populated")
	}
}
