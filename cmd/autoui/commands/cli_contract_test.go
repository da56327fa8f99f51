package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	out := b.String()

	// Top-level commands workflows rely on
	requiredCommands := []string{
		"answers",
		"completion",
		"evaluate",
		"generate",
		"help",
		"init",
		"schema",
		"status",
		"version",
	}

	for _, c := range requiredCommands {
		if !strings.Contains(out, c) {
			t.Errorf("expected top-level command %q in root help", c)
		}
	}
}

func TestCLICommandEvaluateHelp(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"evaluate", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("evaluate help failed: %v", err)
	}

	out := b.String()
	for _, flag := range []string{"--issue", "--json", "--dry-run", "--config", "--verbose"} {
		if !strings.Contains(out, flag) {
			t.Errorf("expected flag %q in evaluate help", flag)
		}
	}
}

func TestCLIVersion(t *testing.T) {
	t.Setenv("AUTOUI_VERSION", "1.2.3")

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if got := b.String(); got != "autoui version 1.2.3\n" {
		t.Errorf("got %q", got)
	}
}
