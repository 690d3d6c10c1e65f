package summarizer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/user/yuvnv12/pkg/nv12"
)

// Translator maps a label to its display text.
type Translator func(key string) string

// TextFormatter renders a Summary as aligned plain text.
type TextFormatter struct {
	t Translator
}

// TextOption configures a TextFormatter.
type TextOption func(*TextFormatter)

// WithTranslator sets the label translator. The default leaves labels as is.
func WithTranslator(t Translator) TextOption {
	return func(f *TextFormatter) {
		f.t = t
	}
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(opts ...TextOption) *TextFormatter {
	f := &TextFormatter{t: func(key string) string { return key }}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *TextFormatter) Format(s *Summary) string {
	var b strings.Builder

	switch s.Operation {
	case OperationInspect:
		b.WriteString(f.t("Inspection Summary"))
	case OperationRestore:
		b.WriteString(f.t("Restore Summary"))
	default:
		b.WriteString(f.t("Conversion Summary"))
	}
	b.WriteString("\n")

	if s.Input.Path != "" {
		f.line(&b, "Input", fmt.Sprintf("%s (%s)", s.Input.Path, Bytes(s.Input.Size)))
	}
	if s.Output.Path != "" {
		f.line(&b, "Output", fmt.Sprintf("%s (%s)", s.Output.Path, Bytes(s.Output.Size)))
	}
	if s.Frame.Width > 0 && s.Frame.Height > 0 {
		f.line(&b, "Dimensions", fmt.Sprintf("%s, %s %s",
			s.Frame, humanize.Comma(int64(s.Frame.Pixels())), f.t("pixels")))
		f.line(&b, "NV12 frame size", Bytes(int64(s.Frame.FrameSize())))
	}

	if in := s.Inspection; in != nil {
		f.line(&b, "Kind", string(in.Kind))
		if in.Format != "" {
			f.line(&b, "Format", string(in.Format))
		}
		if in.Codec != "" {
			f.line(&b, "Codec", in.Codec)
		}
		if in.Collision != "" {
			f.line(&b, "Looks like", string(in.Collision))
		}
		if in.HasCandidate {
			f.line(&b, "Matches dimensions", f.yesNo(in.MatchesCandidate))
		}
		if len(in.Suggestions) > 0 {
			f.line(&b, "Possible dimensions", JoinDimensions(in.Suggestions))
		}
	}

	for _, w := range s.Warnings {
		f.line(&b, "Warning", w)
	}

	return b.String()
}

func (f *TextFormatter) line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-20s %s\n", f.t(label)+":", value)
}

func (f *TextFormatter) yesNo(v bool) string {
	if v {
		return f.t("yes")
	}
	return f.t("no")
}

// Bytes formats n as "1.2 MB (1,234,567 bytes)". Sizes under 1000 bytes are
// printed once.
func Bytes(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d bytes", n)
	}
	return fmt.Sprintf("%s (%s bytes)", humanize.Bytes(uint64(n)), humanize.Comma(n))
}

// JoinDimensions formats dims as "WxH, WxH".
func JoinDimensions(dims []nv12.Dimensions) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}

var _ Formatter = (*TextFormatter)(nil)
