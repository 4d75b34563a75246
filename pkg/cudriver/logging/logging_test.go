package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestEnabledFollowsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx := context.Background()
	if l.Enabled(ctx, slog.LevelDebug) {
		t.Fatal("debug should be disabled at info level")
	}
	if !l.Enabled(ctx, slog.LevelWarn) {
		t.Fatal("warn should be enabled at info level")
	}

	l.Debug(ctx, "dropped")
	l.Info(ctx, "kept", "k", "v")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "k=v") {
		t.Fatalf("info line missing attrs: %q", out)
	}
}

func TestWithCarriesAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, nil)))

	l.With("component", "loader").Info(context.Background(), "opened")
	if !strings.Contains(buf.String(), "component=loader") {
		t.Fatalf("expected bound attr, got %q", buf.String())
	}
}

func TestNewNilBindsDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}
