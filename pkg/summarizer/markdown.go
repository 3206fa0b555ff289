package summarizer

import (
	"fmt"
	"strings"
)

// Translator translates user-facing labels. The default is identity.
type Translator func(string) string

// MarkdownFormatter formats a Summary as a markdown report.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the label translator.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion includes a version string in the report footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders the summary as markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Render Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), summary.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(&b, "## %s\n\n", t("Title"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Text"), summary.Text.Title)
	fmt.Fprintf(&b, "- %s: %.0f pt\n", t("Font size"), summary.Text.FontSize)
	fmt.Fprintf(&b, "- %s: %d\n", t("Lines"), len(summary.Text.Lines))
	if summary.Text.Truncated {
		fmt.Fprintf(&b, "- %s\n", t("Title was truncated to fit"))
	}
	b.WriteString("\n")

	if len(summary.Icons) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Icons"))
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t("Query"), t("Source"), t("Detail"))
		b.WriteString("| --- | --- | --- |\n")
		for _, icon := range summary.Icons {
			detail := icon.Detail
			if detail == "" {
				detail = "-"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", icon.Query, icon.Provenance, detail)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "- %s: %s\n", t("File"), summary.Output.Path)
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Canvas"), summary.Output.CanvasWidth, summary.Output.CanvasHeight)
	fmt.Fprintf(&b, "- %s: %s\n", t("Size"), formatBytes(summary.Output.FileSize))
	if summary.Output.LayeredPath != "" {
		fmt.Fprintf(&b, "- %s: %s (%d %s)\n", t("Layered file"), summary.Output.LayeredPath, summary.Output.LayerCount, t("layers"))
	}
	fmt.Fprintf(&b, "- %s: %d ms\n", t("Elapsed"), summary.Output.ElapsedMs)

	if f.version != "" {
		fmt.Fprintf(&b, "\n---\n%s %s\n", t("Generated by thumbforge"), f.version)
	}

	return b.String()
}

func formatBytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
