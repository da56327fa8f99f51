// Package console prints leveled, colored progress lines for the CLI.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	debugLabel   = color.New(color.FgHiBlack).SprintFunc()
	successLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnLabel    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Logger writes human-facing log lines. Debug lines are only emitted when
// verbose is set.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New returns a logger writing to w.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{out: w, verbose: verbose}
}

// Discard drops everything.
func Discard() *Logger {
	return &Logger{out: io.Discard}
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool {
	return l != nil && l.verbose
}

func (l *Logger) Debugf(format string, args ...any) {
	if !l.Verbose() {
		return
	}
	l.printf(debugLabel("[debug]")+" "+format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf(format, args...)
}

func (l *Logger) Successf(format string, args ...any) {
	l.printf(successLabel("✓")+" "+format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.printf(warnLabel("warning:")+" "+format, args...)
}

func (l *Logger) printf(format string, args ...any) {
	if l == nil {
		return
	}
	_, _ = fmt.Fprintf(l.out, format+"\n", args...)
}
