package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/storylint/internal/model"
)

// Output formats accepted in output.format
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// ErrUnknownFormat is returned for an unsupported output format
var ErrUnknownFormat = errors.New("unknown output format")

const rule = "═══════════════════════════════════════════════════════════"

// Renderer writes reports in one output format
type Renderer struct {
	format string
}

// NewRenderer creates a renderer, validating the format up front
func NewRenderer(format string) (*Renderer, error) {
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
	case "md":
		format = FormatMarkdown
	case "yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &Renderer{format: format}, nil
}

// Format returns the normalised output format
func (r *Renderer) Format() string {
	return r.format
}

// Render writes report to w
func (r *Renderer) Render(w io.Writer, report *model.Report) error {
	var err error
	switch r.format {
	case FormatJSON:
		err = r.RenderJSON(w, report)
	case FormatYAML:
		err = r.RenderYAML(w, report)
	case FormatMarkdown:
		err = r.RenderMarkdown(w, report)
	default:
		err = r.RenderText(w, report)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", r.format, err)
	}
	return nil
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// RenderYAML writes the report as YAML
func (r *Renderer) RenderYAML(w io.Writer, report *model.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

// RenderText writes a human-readable report for the terminal
func (r *Renderer) RenderText(w io.Writer, report *model.Report) error {
	var b strings.Builder

	for _, s := range report.Stories {
		fmt.Fprintf(&b, "Story %d: %s\n", s.Index+1, s.Text)
		fmt.Fprintf(&b, "  Role:  %s\n", chunkOrDash(s.Role))
		fmt.Fprintf(&b, "  Means: %s\n", chunkOrDash(s.Means))
		fmt.Fprintf(&b, "  Ends:  %s\n", chunkOrDash(s.Ends))
		writeTextDefects(&b, &s.Defects)
		b.WriteString("\n")
	}

	for _, f := range report.Failures {
		fmt.Fprintf(&b, "Story %d: not analysed: %s\n\n", f.Index+1, f.Error)
	}

	if c := report.Criteria; c != nil {
		if c.StoryNumber > 0 {
			fmt.Fprintf(&b, "Acceptance criteria for story %d\n\n", c.StoryNumber)
		}
		for _, item := range c.Items {
			fmt.Fprintf(&b, "%s: %s\n", item.Title, item.Text)
			writeTextDefects(&b, &item.Defects)
			b.WriteString("\n")
		}
		if c.Unique != nil {
			fmt.Fprintf(&b, "✗ %s\n", c.Unique.Title)
			for _, d := range c.Unique.Defects {
				fmt.Fprintf(&b, "    - %s\n", d)
			}
			b.WriteString("\n")
		}
	}

	writeTextSummary(&b, report.Summary)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextDefects(b *strings.Builder, d *model.Defects) {
	if d.Len() == 0 {
		b.WriteString("  ✓ No defects\n")
		return
	}
	for _, defect := range d.List() {
		fmt.Fprintf(b, "  ✗ %s\n", defect.Title)
		for _, msg := range defect.Descriptions {
			fmt.Fprintf(b, "      - %s\n", msg)
		}
	}
}

func writeTextSummary(b *strings.Builder, s model.Summary) {
	b.WriteString(rule + "\n")
	fmt.Fprintf(b, "  Quality index: %d/100  (%d of %d artifacts clean, %d messages)\n",
		s.Index, s.Clean, s.Artifacts, s.Messages)
	b.WriteString(rule + "\n")
	for _, sig := range s.Signals {
		fmt.Fprintf(b, "  [%s] %s\n", sig.Severity, sig.Description)
	}
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(w io.Writer, report *model.Report) error {
	var b strings.Builder

	b.WriteString("# Storylint Report\n\n")
	if report.Source != "" {
		fmt.Fprintf(&b, "**Source:** `%s`  \n", report.Source)
	}
	if !report.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "**Generated:** %s  \n", report.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(&b, "**Quality index:** %d/100 (%d of %d artifacts clean)\n\n",
		report.Summary.Index, report.Summary.Clean, report.Summary.Artifacts)

	if len(report.Summary.Signals) > 0 {
		b.WriteString("## Signals\n\n")
		b.WriteString("| Category | Severity | Detail |\n")
		b.WriteString("|----------|----------|--------|\n")
		for _, sig := range report.Summary.Signals {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", sig.Category, sig.Severity, escapeCell(sig.Description))
		}
		b.WriteString("\n")
	}

	if len(report.Stories) > 0 || len(report.Failures) > 0 {
		b.WriteString("## User Stories\n\n")
	}
	for _, s := range report.Stories {
		fmt.Fprintf(&b, "### Story %d\n\n", s.Index+1)
		fmt.Fprintf(&b, "> %s\n\n", s.Text)
		b.WriteString("| Chunk | Text |\n")
		b.WriteString("|-------|------|\n")
		fmt.Fprintf(&b, "| Role | %s |\n", escapeCell(chunkOrDash(s.Role)))
		fmt.Fprintf(&b, "| Means | %s |\n", escapeCell(chunkOrDash(s.Means)))
		fmt.Fprintf(&b, "| Ends | %s |\n\n", escapeCell(chunkOrDash(s.Ends)))
		writeMarkdownDefects(&b, &s.Defects)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(&b, "### Story %d\n\n_Not analysed: %s_\n\n", f.Index+1, f.Error)
	}

	if c := report.Criteria; c != nil {
		b.WriteString("## Acceptance Criteria\n\n")
		if c.StoryNumber > 0 {
			fmt.Fprintf(&b, "For story %d.\n\n", c.StoryNumber)
		}
		for _, item := range c.Items {
			fmt.Fprintf(&b, "### %s\n\n", item.Title)
			fmt.Fprintf(&b, "> %s\n\n", item.Text)
			writeMarkdownDefects(&b, &item.Defects)
		}
		if c.Unique != nil {
			fmt.Fprintf(&b, "### %s\n\n", c.Unique.Title)
			for _, d := range c.Unique.Defects {
				fmt.Fprintf(&b, "- %s\n", d)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownDefects(b *strings.Builder, d *model.Defects) {
	if d.Len() == 0 {
		b.WriteString("No defects.\n\n")
		return
	}
	for _, defect := range d.List() {
		fmt.Fprintf(b, "**%s**\n\n", defect.Title)
		for _, msg := range defect.Descriptions {
			fmt.Fprintf(b, "- %s\n", msg)
		}
		b.WriteString("\n")
	}
}

func chunkOrDash(c *string) string {
	if c == nil {
		return "-"
	}
	return *c
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
