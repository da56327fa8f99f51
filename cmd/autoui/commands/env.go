package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/autoui/cmd/autoui/internal/clierr"
	"github.com/bartekus/autoui/internal/answers"
	"github.com/bartekus/autoui/internal/config"
	"github.com/bartekus/autoui/internal/console"
	"github.com/bartekus/autoui/internal/issues"
	"github.com/bartekus/autoui/internal/projectroot"
	"github.com/bartekus/autoui/internal/questionnaire"
)

// globalOptions holds persistent flags shared by every subcommand.
type globalOptions struct {
	verbose    bool
	configPath string
	dir        string
}

// newIssueClient is swapped out in tests.
var newIssueClient = func(cfg *config.Configuration, log *console.Logger) issues.Client {
	retry := issues.DefaultRetryConfig()
	retry.MaxAttempts = cfg.RetryAttempts
	return issues.NewGitHubClient(cfg.Repo, cfg.GHTimeout, retry, log)
}

// env is the resolved runtime context of a command.
type env struct {
	root string
	cfg  *config.Configuration
	log  *console.Logger
}

func (o *globalOptions) load(cmd *cobra.Command) (*env, error) {
	log := console.New(cmd.ErrOrStderr(), o.verbose)

	root, err := projectroot.Find(o.dir)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitUsage, "finding repository root", err)
	}
	log.Debugf("repository root: %s", root)

	cfg, err := config.Load(config.LoadOptions{ProjectConfigPath: o.configPath, Dir: root})
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitUsage, "loading config", err)
	}
	cfg.Resolve(root)
	log.Debugf("schema: %s, answers: %s", cfg.SchemaPath, cfg.AnswersPath)

	return &env{root: root, cfg: cfg, log: log}, nil
}

func (e *env) store() *answers.Store {
	return answers.NewStore(e.cfg.AnswersPath)
}

func (e *env) schema() (*questionnaire.Schema, error) {
	s, err := questionnaire.LoadSchema(e.cfg.SchemaPath)
	if err != nil {
		return nil, clierr.Classify("loading schema", err)
	}
	return s, nil
}

func (e *env) isAutomation() func(string) bool {
	return issues.BotPredicate(e.cfg.BotLogins...)
}
