package outputs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/autoui/internal/issues"
	"github.com/bartekus/autoui/internal/questionnaire"
)

func TestWriter_Fallback(t *testing.T) {
	t.Setenv(EnvFile, "")

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.delim = func() string { return "EOF" }

	err := w.Write([]Field{
		{"complete", "false"},
		{"status_block", "### Brand\n- `a`: ❌"},
	})
	require.NoError(t, err)
	assert.Equal(t, "complete=false\nstatus_block<<EOF\n### Brand\n- `a`: ❌\nEOF\n", buf.String())
}

func TestWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("earlier=1\n"), 0o600))
	t.Setenv(EnvFile, path)

	w := NewWriter(nil)
	w.delim = func() string { return "DELIM" }
	require.NoError(t, w.Write([]Field{{"pending_key", "tagline"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "earlier=1\npending_key<<DELIM\ntagline\nDELIM\n", string(data))
}

func TestWriter_RandomDelimiter(t *testing.T) {
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "output"))

	w := NewWriter(nil)
	first, second := w.delim(), w.delim()
	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "ghadelimiter_")
}

func TestWriter_Rejects(t *testing.T) {
	t.Setenv(EnvFile, "")

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.delim = func() string { return "EOF" }

	assert.Error(t, w.Write([]Field{{"", "x"}}))
	assert.Error(t, w.Write([]Field{{"a=b", "x"}}))
	assert.Error(t, w.Write([]Field{{"body", "line\nEOF\nmore"}}))
	assert.Empty(t, buf.String())
}

func TestLabelMissing(t *testing.T) {
	got := Map(LabelMissing(issues.Issue{Number: 9, Title: "Help"}))
	assert.Equal(t, map[string]string{
		"has_label":     "false",
		"issue_number":  "9",
		"issue_title":   "Help",
		"complete":      "false",
		"next_question": "",
		"status_block":  LabelMissingStatus,
	}, got)
}

func TestFromResult(t *testing.T) {
	schema := &questionnaire.Schema{Sections: []questionnaire.Section{{
		ID:    "brand",
		Title: "Brand",
		Intro: "Basics.",
		Links: []string{"https://a", "https://b"},
		Questions: []questionnaire.Question{
			{Key: "product_name", Ask: "Name?"},
		},
	}}}
	res, err := questionnaire.Evaluate(schema, "", nil, "skip")
	require.NoError(t, err)

	got := Map(FromResult(issues.Issue{Number: 1, Title: "T"}, res))
	assert.Equal(t, "true", got["has_label"])
	assert.Equal(t, "false", got["complete"])
	assert.Equal(t, "true", got["wants_skip"])
	assert.Equal(t, "product_name", got["pending_key"])
	assert.Equal(t, "brand", got["section_id"])
	assert.Equal(t, "Brand", got["section_title"])
	assert.Equal(t, "Basics.", got["section_intro"])
	assert.Equal(t, "- https://a\n- https://b", got["section_links"])
	assert.Equal(t, "### Brand\n- `product_name`: ❌", got["status_block"])
	assert.Contains(t, got["next_question"], "`product_name=...`")

	done, err := questionnaire.Evaluate(schema, "product_name=Acme", nil, "")
	require.NoError(t, err)
	got = Map(FromResult(issues.Issue{Number: 1}, done))
	assert.Equal(t, "true", got["complete"])
	assert.Equal(t, "", got["pending_key"])
	assert.Equal(t, "", got["section_id"])
	assert.Equal(t, "", got["next_question"])
}
