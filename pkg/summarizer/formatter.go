package summarizer

// Formatter renders a conversion, restore or inspection Summary for output.
// TextFormatter and YAMLFormatter are the implementations the CLI selects
// between.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc lets a plain function render summaries, e.g. in tests.
type FormatFunc func(summary *Summary) string

// Format calls f.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}
