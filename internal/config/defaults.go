package config

import "time"

// GetDefaults returns the default value for every config key.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"schema_path":    ".github/templates/autoui/questions.json",
		"answers_path":   ".autoui/answers.json",
		"label":          "AutoUI",
		"bot_logins":     []string{"github-actions[bot]"},
		"repo":           "",
		"templates_dir":  ".github/templates/autoui",
		"output_dir":     "coming-soon/src",
		"gh_timeout":     30 * time.Second,
		"retry_attempts": 3,
	}
}

// GetDefaultConfigTemplate returns a commented project config.
func GetDefaultConfigTemplate() string {
	return `# autoui configuration
schema_path: .github/templates/autoui/questions.json   # question schema (YAML or JSON)
answers_path: .autoui/answers.json                     # persisted answers
label: AutoUI                                          # issues without this label are ignored
bot_logins:                                            # comment authors treated as automation
  - github-actions[bot]
repo: ""                                               # owner/name, empty = current repository
templates_dir: .github/templates/autoui                # overrides for *.vue.template
output_dir: coming-soon/src                            # generated front-end sources
gh_timeout: 30s                                        # per gh call
retry_attempts: 3                                      # gh attempts for transient failures
`
}
