package commands

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/bartekus/autoui/cmd/autoui/internal/clierr"
	"github.com/bartekus/autoui/internal/issues"
	"github.com/bartekus/autoui/internal/outputs"
	"github.com/bartekus/autoui/internal/questionnaire"
)

// evaluation is one pass over an issue thread.
type evaluation struct {
	thread   *issues.Thread
	hasLabel bool
	result   *questionnaire.Result // nil when the label is missing
}

func evaluateIssue(ctx context.Context, e *env, number int) (*evaluation, error) {
	if number <= 0 {
		return nil, clierr.New(clierr.ExitUsage, "--issue must be a positive issue number")
	}

	client := newIssueClient(e.cfg, e.log)
	thread, err := issues.Fetch(ctx, client, number)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitIssueTracker, "fetching issue", err)
	}
	e.log.Debugf("issue #%d: %d comments, labels %v", number, len(thread.Comments), thread.Issue.Labels)

	ev := &evaluation{thread: thread, hasLabel: thread.HasLabel(e.cfg.Label)}
	if !ev.hasLabel {
		return ev, nil
	}

	schema, err := e.schema()
	if err != nil {
		return nil, err
	}
	prior, err := e.store().Load()
	if err != nil {
		return nil, clierr.Classify("loading answers", err)
	}
	last, _ := thread.LastHumanComment(e.isAutomation())

	res, err := questionnaire.Evaluate(schema, thread.Corpus(), prior, last)
	if err != nil {
		return nil, clierr.Classify("evaluating questionnaire", err)
	}
	ev.result = res
	return ev, nil
}

// NewEvaluateCommand returns `autoui evaluate`, which advances the
// questionnaire for one issue and publishes the result as step outputs.
func NewEvaluateCommand(opts *globalOptions) *cobra.Command {
	var (
		number int
		asJSON bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate an issue thread and report questionnaire outputs",
		Long: `Fetch the issue and its comments, extract answers, persist the merged
answer set and report step outputs.

Outputs are appended to $GITHUB_OUTPUT when set, otherwise printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}

			ev, err := evaluateIssue(cmd.Context(), e, number)
			if err != nil {
				return err
			}

			var fields []outputs.Field
			if !ev.hasLabel {
				e.log.Warnf("issue #%d has no %q label, skipping", number, e.cfg.Label)
				fields = outputs.LabelMissing(ev.thread.Issue)
			} else {
				if !dryRun {
					if err := e.store().Save(ev.result.Answers); err != nil {
						return clierr.Classify("saving answers", err)
					}
					e.log.Debugf("saved %d answers to %s", len(ev.result.Answers), e.cfg.AnswersPath)
				}
				fields = outputs.FromResult(ev.thread.Issue, ev.result)
				if ev.result.Complete {
					e.log.Successf("questionnaire complete for issue #%d", number)
				} else {
					e.log.Successf("issue #%d: next question %s", number, ev.result.PendingKey())
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(outputs.Map(fields))
			}
			if err := outputs.NewWriter(cmd.OutOrStdout()).Write(fields); err != nil {
				return clierr.Wrap(clierr.ExitFailure, "writing outputs", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&number, "issue", 0, "issue number to evaluate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print outputs as JSON instead of step outputs")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "do not persist merged answers")
	_ = cmd.MarkFlagRequired("issue")

	return cmd
}
