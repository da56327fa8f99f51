package questionnaire

import (
	"fmt"
	"strings"
)

const (
	markMissing  = "❌"
	markSkipped  = "⏭️ skipped"
	markAnswered = "✅"
)

func renderStatus(schema *Schema, answers Answers) string {
	blocks := make([]string, 0, len(schema.Sections))
	for _, sec := range schema.Sections {
		var b strings.Builder
		fmt.Fprintf(&b, "### %s", sec.Title)
		for _, q := range sec.Questions {
			b.WriteString("\n")
			b.WriteString(statusLine(q.Key, answers))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func statusLine(key string, answers Answers) string {
	v, ok := answers[key]
	switch {
	case !ok:
		return fmt.Sprintf("- `%s`: %s", key, markMissing)
	case IsSkipped(v):
		return fmt.Sprintf("- `%s`: %s", key, markSkipped)
	default:
		return fmt.Sprintf("- `%s`: %s %s", key, markAnswered, v)
	}
}

func renderPrompt(q Question) string {
	var b strings.Builder
	b.WriteString(q.Ask)
	if len(q.Options) > 0 {
		b.WriteString("\n\n**Options:**")
		for _, o := range q.Options {
			b.WriteString("\n- ")
			b.WriteString(o)
		}
	}
	fmt.Fprintf(&b, "\n\nReply with:\n- `%s=...`\n- or `skip` / `next`", q.Key)
	return b.String()
}
