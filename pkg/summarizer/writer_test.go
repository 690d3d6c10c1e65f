package summarizer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriter_WriteTo(t *testing.T) {
	w := NewWriter(FormatFunc(func(s *Summary) string { return "hello\n" }))

	var buf bytes.Buffer
	if err := w.WriteTo(&buf, NewSummary(OperationConvert)); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("expected hello, got %q", buf.String())
	}

	if err := w.WriteTo(failingWriter{}, NewSummary(OperationConvert)); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestWriter_Write(t *testing.T) {
	w := NewWriter(NewTextFormatter())
	path := filepath.Join(t.TempDir(), "nested", "summary.txt")

	summary := NewBuilder(OperationConvert).WithInput("in.png", 10).Build()
	if err := w.Write(path, summary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to be written: %v", err)
	}
	if !bytes.Contains(data, []byte("in.png")) {
		t.Errorf("expected summary content, got %q", data)
	}
}
