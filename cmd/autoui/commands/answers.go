package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bartekus/autoui/cmd/autoui/internal/clierr"
	"github.com/bartekus/autoui/internal/projection"
	"github.com/bartekus/autoui/internal/questionnaire"
)

// NewAnswersCommand returns the `autoui answers` command group.
func NewAnswersCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Inspect or reset the persisted answer set",
	}
	cmd.AddCommand(newAnswersShowCommand(opts))
	cmd.AddCommand(newAnswersResetCommand(opts))
	return cmd
}

func newAnswersShowCommand(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print stored answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			a, err := e.store().Load()
			if err != nil {
				return clierr.Classify("loading answers", err)
			}

			warnUnknownKeys(e, a)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}

			if len(a) == 0 {
				_, _ = fmt.Fprintln(out, "No answers recorded.")
				return nil
			}
			rows := make([][]string, 0, len(a))
			for _, k := range projection.SortedKeys(a) {
				v := a[k]
				if questionnaire.IsSkipped(v) {
					v = "(skipped)"
				}
				rows = append(rows, []string{k, v})
			}
			_, err = fmt.Fprint(out, projection.RenderTable([]string{"Key", "Answer"}, rows))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print answers as JSON")
	return cmd
}

// warnUnknownKeys flags stored answers whose question was removed from the
// schema. A schema that fails to load is reported by evaluate, not here.
func warnUnknownKeys(e *env, a questionnaire.Answers) {
	s, err := questionnaire.LoadSchema(e.cfg.SchemaPath)
	if err != nil {
		e.log.Debugf("skipping key check: %v", err)
		return
	}
	rel := strings.TrimPrefix(e.cfg.SchemaPath, e.root+"/")
	for _, k := range projection.SortedKeys(a) {
		if _, _, ok := s.Question(k); !ok {
			e.log.Warnf("%s is not a question in %s", k, rel)
		}
	}
}

func newAnswersResetCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete stored answers so the questionnaire starts over",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			store := e.store()
			removed, err := store.Reset()
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "resetting answers", err)
			}
			if !removed {
				e.log.Infof("no answers stored at %s", store.Path())
				return nil
			}
			e.log.Successf("removed %s", store.Path())
			return nil
		},
	}
}
