package summarizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer writes formatted summaries to streams or files.
type Writer struct {
	formatter Formatter
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter) *Writer {
	return &Writer{
		formatter: formatter,
	}
}

// WriteTo formats the summary and writes it to out.
func (w *Writer) WriteTo(out io.Writer, summary *Summary) error {
	if _, err := io.WriteString(out, w.formatter.Format(summary)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Write formats the summary and writes it to the specified path.
// Creates parent directories if they don't exist.
func (w *Writer) Write(path string, summary *Summary) error {
	content := w.formatter.Format(summary)

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
