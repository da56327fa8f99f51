// Package outputs reports step outputs to GitHub Actions.
package outputs

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/bartekus/autoui/internal/issues"
	"github.com/bartekus/autoui/internal/questionnaire"
)

// EnvFile is the variable Actions uses to point at the step output file.
const EnvFile = "GITHUB_OUTPUT"

// LabelMissingStatus is reported when the issue is not part of the flow.
const LabelMissingStatus = "AutoUI label missing."

// Field is one named output.
type Field struct {
	Name  string
	Value string
}

// Writer appends outputs to the Actions output file, or to a plain writer
// when running outside a workflow.
type Writer struct {
	path     string
	fallback io.Writer
	delim    func() string
}

// NewWriter targets the file named by $GITHUB_OUTPUT, falling back to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		path:     os.Getenv(EnvFile),
		fallback: w,
		delim:    func() string { return "ghadelimiter_" + uuid.NewString() },
	}
}

// Write emits every field in order.
func (w *Writer) Write(fields []Field) error {
	var b strings.Builder
	for _, f := range fields {
		if err := w.encode(&b, f); err != nil {
			return err
		}
	}

	if w.path == "" {
		_, err := io.WriteString(w.fallback, b.String())
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", EnvFile, err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", EnvFile, err)
	}
	return f.Close()
}

func (w *Writer) encode(b *strings.Builder, f Field) error {
	if strings.ContainsAny(f.Name, "=\n") || f.Name == "" {
		return fmt.Errorf("invalid output name %q", f.Name)
	}
	if w.path == "" && !strings.Contains(f.Value, "\n") {
		fmt.Fprintf(b, "%s=%s\n", f.Name, f.Value)
		return nil
	}

	delim := w.delim()
	if strings.Contains(f.Name, delim) || strings.Contains(f.Value, delim) {
		return fmt.Errorf("output %s collides with delimiter", f.Name)
	}
	fmt.Fprintf(b, "%s<<%s\n%s\n%s\n", f.Name, delim, f.Value, delim)
	return nil
}

// LabelMissing is the output set for issues outside the flow.
func LabelMissing(issue issues.Issue) []Field {
	return []Field{
		{"has_label", "false"},
		{"issue_number", strconv.Itoa(issue.Number)},
		{"issue_title", issue.Title},
		{"complete", "false"},
		{"next_question", ""},
		{"status_block", LabelMissingStatus},
	}
}

// FromResult is the full output set for an evaluated issue.
func FromResult(issue issues.Issue, res *questionnaire.Result) []Field {
	var sectionID, sectionTitle, sectionIntro string
	if res.Section != nil {
		sectionID = res.Section.ID
		sectionTitle = res.Section.Title
		sectionIntro = res.Section.Intro
	}
	return []Field{
		{"has_label", "true"},
		{"issue_number", strconv.Itoa(issue.Number)},
		{"issue_title", issue.Title},
		{"complete", strconv.FormatBool(res.Complete)},
		{"wants_skip", strconv.FormatBool(res.WantsSkip)},
		{"pending_key", res.PendingKey()},
		{"section_id", sectionID},
		{"section_title", sectionTitle},
		{"section_intro", sectionIntro},
		{"section_links", res.SectionLinks()},
		{"status_block", res.StatusBlock},
		{"next_question", res.NextPrompt},
	}
}

// Map flattens fields for JSON output.
func Map(fields []Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return m
}
