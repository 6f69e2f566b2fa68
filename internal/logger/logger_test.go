package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromZapFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap("assistant", zap.New(core))

	l.WarnWithFields("ask failed for %s", []Field{F("object", "cdm-001"), Error(errors.New("boom")), Duration(time.Second)}, "cdm-001")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "assistant" {
		t.Errorf("expected logger name assistant, got %q", e.LoggerName)
	}
	if e.Message != "ask failed for cdm-001" {
		t.Errorf("unexpected message %q", e.Message)
	}
	ctx := e.ContextMap()
	if ctx["object"] != "cdm-001" {
		t.Errorf("expected object field, got %v", ctx["object"])
	}
	if ctx["error"] != "boom" {
		t.Errorf("expected error field boom, got %v", ctx["error"])
	}
}

func TestWithComponent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap("", zap.New(core))
	if l.Component() != "main" {
		t.Errorf("expected default component main, got %q", l.Component())
	}

	l.WithComponent("router").Info("moved")
	if got := logs.All()[0].LoggerName; got != "main.router" {
		t.Errorf("expected main.router, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.WarnLevel, false},
		{"DEBUG", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.WarnLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "datagov.log")
	sync, err := Setup(Options{File: path, Verbose: true})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	t.Cleanup(func() { SetVerbose(false) })

	New("catalog").Debug("loaded %d objects", 6)
	_ = sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "loaded 6 objects") {
		t.Errorf("log file missing message: %s", data)
	}
	if !strings.Contains(string(data), "catalog") {
		t.Errorf("log file missing component: %s", data)
	}
}
