package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/autoui/internal/config"
	"github.com/bartekus/autoui/internal/console"
	"github.com/bartekus/autoui/internal/issues"
)

const testSchemaJSON = `{
  "sections": [
    {
      "id": "brand",
      "title": "Brand",
      "intro": "Tell us about the product.",
      "links": ["https://example.com/brand"],
      "questions": [
        {"key": "product_name", "ask": "What is the product called?"},
        {"key": "tagline", "ask": "One-line tagline?"}
      ]
    },
    {
      "id": "tech",
      "title": "Tech",
      "intro": "",
      "links": [],
      "questions": [
        {"key": "chart_lib", "ask": "Which chart library?", "options": ["chart.js", "echarts"]}
      ]
    }
  ]
}`

// fakeIssues implements issues.Client without shelling out to gh.
type fakeIssues struct {
	issue    issues.Issue
	comments []issues.Comment
	err      error
}

func (f *fakeIssues) GetIssue(_ context.Context, number int) (*issues.Issue, error) {
	if f.err != nil {
		return nil, f.err
	}
	is := f.issue
	is.Number = number
	return &is, nil
}

func (f *fakeIssues) ListComments(_ context.Context, _ int) ([]issues.Comment, error) {
	return f.comments, f.err
}

// useFakeIssues swaps the issue client for the duration of the test.
func useFakeIssues(t *testing.T, f *fakeIssues) {
	t.Helper()
	orig := newIssueClient
	newIssueClient = func(*config.Configuration, *console.Logger) issues.Client { return f }
	t.Cleanup(func() { newIssueClient = orig })
}

// newProject creates a repository directory holding the default schema.
func newProject(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	t.Setenv("GITHUB_OUTPUT", "")

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, ".github", "templates", "autoui", "questions.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(schemaPath), 0o755))
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchemaJSON), 0o600))
	return dir
}

// runCLI executes the root command in dir and returns stdout and stderr.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
