// Package scaffold renders the front-end files from collected answers.
//
// Templates use ${PLACEHOLDER} markers rather than text/template actions
// because Vue single-file components already use {{ }} for interpolation.
// A marker expands to a quoted JavaScript string literal, so markers belong
// in <script setup> bindings and markup reads them through {{ }}.
package scaffold

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bartekus/autoui/internal/console"
	"github.com/bartekus/autoui/internal/projection"
	"github.com/bartekus/autoui/internal/questionnaire"
)

// DefaultOutDir is where generated sources are written, relative to the
// repository root.
const DefaultOutDir = "coming-soon/src"

//go:embed templates/*.template
var builtin embed.FS

// Placeholder binds a template marker to the answer key that fills it.
type Placeholder struct {
	Name     string
	Key      string
	Fallback string
}

// Placeholders lists every marker, in the order they are documented.
var Placeholders = []Placeholder{
	{Name: "PRODUCT_NAME", Key: "product_name", Fallback: "Coming Soon"},
	{Name: "TAGLINE", Key: "tagline", Fallback: "Something new is on the way."},
	{Name: "OFFER_TYPE", Key: "offer_type", Fallback: "waitlist"},
	{Name: "PRIMARY_CTA", Key: "primary_cta", Fallback: "Join the waitlist"},
	{Name: "BRAND_TONE", Key: "brand_tone", Fallback: "friendly"},
	{Name: "CHART_STYLE", Key: "chart_style", Fallback: "bar"},
	{Name: "FRAMEWORK", Key: "framework", Fallback: "vue"},
	{Name: "CHART_LIB", Key: "chart_lib", Fallback: "chart.js"},
	{Name: "MODAL_USAGE", Key: "modal_usage", Fallback: "none"},
}

// file is one generated output.
type file struct {
	template string // empty for fixed content
	out      string
	fixed    string
}

var files = []file{
	{template: "Landing.vue.template", out: "Landing.vue"},
	{template: "StatsChart.vue.template", out: filepath.Join("components", "StatsChart.vue")},
	{out: "App.vue", fixed: appVue},
}

const appVue = `
<script setup>
import Landing from "./Landing.vue";
</script>

<template>
  <Landing />
</template>
`

// Generator writes rendered files under OutDir.
type Generator struct {
	// TemplatesDir overrides the built-in templates per file when set.
	TemplatesDir string
	OutDir       string
	Log          *console.Logger
}

// Values resolves every placeholder from answers. Missing and skipped
// answers use the fallback.
func Values(a questionnaire.Answers) map[string]string {
	vals := make(map[string]string, len(Placeholders))
	for _, p := range Placeholders {
		v := strings.TrimSpace(a[p.Key])
		if v == "" || questionnaire.IsSkipped(v) {
			v = p.Fallback
		}
		vals[p.Name] = v
	}
	return vals
}

// Render substitutes ${NAME} markers in tmpl with the value quoted as a
// JavaScript string literal.
func Render(tmpl string, vals map[string]string) string {
	pairs := make([]string, 0, len(vals)*2)
	for _, name := range projection.SortedKeys(vals) {
		pairs = append(pairs, "${"+name+"}", jsString(vals[name]))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// jsString quotes v for a script context. HTML-significant characters and
// U+2028/U+2029 come out as \u escapes, so a value cannot close the
// surrounding <script> element or the literal itself.
func jsString(v string) string {
	b, err := json.Marshal(v)
	if err != nil {
		// strings always marshal; invalid UTF-8 is replaced, not rejected
		return `""`
	}
	return string(b)
}

// Generate renders all files and returns their paths.
func (g *Generator) Generate(a questionnaire.Answers) ([]string, error) {
	outDir := g.OutDir
	if outDir == "" {
		outDir = DefaultOutDir
	}
	vals := Values(a)

	written := make([]string, 0, len(files))
	for _, f := range files {
		content := f.fixed
		if f.template != "" {
			tmpl, err := g.loadTemplate(f.template)
			if err != nil {
				return written, err
			}
			content = Render(tmpl, vals)
		}

		path := filepath.Join(outDir, f.out)
		if err := projection.AtomicWrite(path, []byte(content), projection.SourceMode); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.out, err)
		}
		g.Log.Debugf("wrote %s", path)
		written = append(written, path)
	}
	return written, nil
}

func (g *Generator) loadTemplate(name string) (string, error) {
	if g.TemplatesDir != "" {
		data, err := os.ReadFile(filepath.Join(g.TemplatesDir, name))
		switch {
		case err == nil:
			g.Log.Debugf("using template %s from %s", name, g.TemplatesDir)
			return string(data), nil
		case !os.IsNotExist(err):
			return "", &questionnaire.InputError{Source: name, Err: err}
		}
	}
	data, err := builtin.ReadFile("templates/" + name)
	if err != nil {
		return "", &questionnaire.InputError{Source: name, Err: err}
	}
	return string(data), nil
}
