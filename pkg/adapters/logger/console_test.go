package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/yuvnv12/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelWarn, &out, &errOut)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	if out.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warn message") {
		t.Errorf("expected warn message on stderr, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "error message") {
		t.Errorf("expected error message on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_StreamSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &errOut)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")

	if out.String() != "d\ni\n" {
		t.Errorf("expected debug and info on stdout, got %q", out.String())
	}
	if errOut.String() != "w\n" {
		t.Errorf("expected warn on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_FormatsArgs(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &out)

	log.Info("Wrote %d bytes", 460800)

	if !strings.Contains(out.String(), "460800") {
		t.Errorf("expected formatted argument, got %q", out.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &out)

	log.WithComponent("convert").Info("hello")
	log.Info("plain")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if lines[0] != "[convert] hello" {
		t.Errorf("expected component prefix, got %q", lines[0])
	}
	if lines[1] != "plain" {
		t.Errorf("parent logger must stay unprefixed, got %q", lines[1])
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &out)

	log.Error("should not appear")

	if out.Len() != 0 {
		t.Errorf("expected no output at quiet level, got %q", out.String())
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("ignored")
	if log.WithComponent("x") != log {
		t.Error("expected WithComponent to return the same logger")
	}
}
