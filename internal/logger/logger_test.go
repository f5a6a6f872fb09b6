package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_InvalidLevel(t *testing.T) {
	if _, err := NewZapLogger("loud", "json"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewZapLogger_Console(t *testing.T) {
	l, err := NewZapLogger("warn", "console")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Info("dropped below warn")
}

func TestWrappedLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := New(zap.New(core))

	l.Info("report built", zap.String("fund_code", "110011"))
	l.Warn("short series", zap.Int("points", 3))
	l.Error("load failed")

	if logs.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", logs.Len())
	}
	first := logs.All()[0]
	if first.Message != "report built" {
		t.Errorf("unexpected message %q", first.Message)
	}
	if got := first.ContextMap()["fund_code"]; got != "110011" {
		t.Errorf("expected fund_code field, got %v", got)
	}
	if logs.All()[2].Level != zapcore.ErrorLevel {
		t.Errorf("expected error level, got %v", logs.All()[2].Level)
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("nothing")
	if err := l.Sync(); err != nil {
		t.Errorf("nop sync: %v", err)
	}
}
