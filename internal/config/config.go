// Package config loads autoui settings using koanf.
// Priority: environment variables (AUTOUI_*) > project config
// (.autoui/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "AUTOUI_"

// Configuration holds every setting the CLI reads.
type Configuration struct {
	// SchemaPath points at the question schema (YAML or JSON).
	SchemaPath string `koanf:"schema_path"`
	// AnswersPath is where merged answers are persisted between runs.
	AnswersPath string `koanf:"answers_path"`
	// Label gates which issues take part in the flow.
	Label string `koanf:"label"`
	// BotLogins are comment authors treated as automation.
	BotLogins []string `koanf:"bot_logins"`
	// Repo is owner/name; empty uses the repository gh detects.
	Repo string `koanf:"repo"`

	TemplatesDir string `koanf:"templates_dir"`
	OutputDir    string `koanf:"output_dir"`

	GHTimeout     time.Duration `koanf:"gh_timeout"`
	RetryAttempts int           `koanf:"retry_attempts"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path. An explicit path
	// must exist; the default path is optional.
	ProjectConfigPath string
	// Dir anchors the default project config path.
	Dir string
}

// Load reads configuration from defaults, the project file and the
// environment.
func Load(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	path := opts.ProjectConfigPath
	explicit := path != ""
	if !explicit {
		path = filepath.Join(opts.Dir, ProjectConfigPath())
	}
	if fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load project config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate rejects values the CLI cannot work with.
func (c *Configuration) Validate() error {
	required := map[string]string{
		"schema_path":  c.SchemaPath,
		"answers_path": c.AnswersPath,
		"label":        c.Label,
		"output_dir":   c.OutputDir,
	}
	for _, key := range []string{"schema_path", "answers_path", "label", "output_dir"} {
		if strings.TrimSpace(required[key]) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	if c.GHTimeout <= 0 {
		return fmt.Errorf("gh_timeout must be positive, got %v", c.GHTimeout)
	}
	if c.RetryAttempts < 1 || c.RetryAttempts > 10 {
		return fmt.Errorf("retry_attempts must be between 1 and 10, got %d", c.RetryAttempts)
	}
	if c.Repo != "" && strings.Count(c.Repo, "/") != 1 {
		return fmt.Errorf("repo must be owner/name, got %q", c.Repo)
	}
	return nil
}

// Resolve makes every relative path absolute against root.
func (c *Configuration) Resolve(root string) {
	for _, p := range []*string{&c.SchemaPath, &c.AnswersPath, &c.TemplatesDir, &c.OutputDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(root, *p)
		}
	}
}

// ProjectConfigPath is the default project config location.
func ProjectConfigPath() string {
	return filepath.Join(".autoui", "config.yml")
}

// envTransform converts environment variable names to config keys
// Example: AUTOUI_SCHEMA_PATH -> schema_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
