package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewJSONWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})

	log.With(String("vehicle", "van")).Info(context.Background(), "pack finished",
		Int("placed", 7),
		Float("fill_rate", 0.875),
		Bool("overweight", false),
		Duration("elapsed", 3*time.Millisecond),
		Err(errors.New("boom")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "pack finished" || entry["level"] != "INFO" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["vehicle"] != "van" {
		t.Errorf("expected With field, got %v", entry["vehicle"])
	}
	if entry["placed"] != float64(7) {
		t.Errorf("expected placed=7, got %v", entry["placed"])
	}
	if entry["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", entry["error"])
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		debug    bool
		info     bool
		warn     bool
		errorLvl bool
	}{
		{"", false, true, true, true},
		{"debug", true, true, true, true},
		{"WARNING", false, false, true, true},
		{"error", false, false, false, true},
		{"bogus", false, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Level: tt.level, Output: &buf})
			ctx := context.Background()

			check := func(name string, emit func(), want bool) {
				buf.Reset()
				emit()
				if got := buf.Len() > 0; got != want {
					t.Errorf("%s at level %q: logged=%v, want %v", name, tt.level, got, want)
				}
			}
			check("debug", func() { log.Debug(ctx, "d") }, tt.debug)
			check("info", func() { log.Info(ctx, "i") }, tt.info)
			check("warn", func() { log.Warn(ctx, "w") }, tt.warn)
			check("error", func() { log.Error(ctx, "e") }, tt.errorLvl)
		})
	}
}

func TestTextFormatIsDefault(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Output: &buf}).Info(context.Background(), "hello", String("stop", "Ankara"))

	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "stop=Ankara") {
		t.Errorf("unexpected text output %q", out)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	t.Setenv(EnvFormat, "json")
	if _, ok := NewFromEnv().(*slogger); !ok {
		t.Error("expected slog-backed logger")
	}
}

func TestNoop(t *testing.T) {
	log := Noop()
	log.With(String("a", "b")).Error(context.Background(), "dropped")
	if _, ok := log.With().(noopLogger); !ok {
		t.Error("expected With on a noop logger to stay noop")
	}
}

func TestRunID(t *testing.T) {
	ctx, id := EnsureRunID(context.Background())
	if id == "" {
		t.Fatal("expected a run ID")
	}
	if got := RunIDFromContext(ctx); got != id {
		t.Errorf("RunIDFromContext = %q, want %q", got, id)
	}

	again, same := EnsureRunID(ctx)
	if same != id || again != ctx {
		t.Error("expected existing run ID to be kept")
	}

	var buf bytes.Buffer
	_, log := WithRunLogger(ctx, New(Config{Format: "json", Output: &buf}))
	log.Info(ctx, "x")
	if !strings.Contains(buf.String(), `"run_id":"`+id+`"`) {
		t.Errorf("expected run_id in output, got %q", buf.String())
	}
}

func TestContextLogger(t *testing.T) {
	if _, ok := FromContext(context.Background()).(noopLogger); !ok {
		t.Error("expected noop logger when none stored")
	}

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), New(Config{Output: &buf}))
	FromContext(ctx).Info(ctx, "stored")
	if !strings.Contains(buf.String(), "stored") {
		t.Errorf("expected stored logger to be used, got %q", buf.String())
	}
}
