package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bartekus/autoui/cmd/autoui/internal/clierr"
	"github.com/bartekus/autoui/internal/questionnaire"
	"github.com/bartekus/autoui/internal/scaffold"
)

// NewGenerateCommand returns `autoui generate`, which renders the front-end
// files from stored answers.
func NewGenerateCommand(opts *globalOptions) *cobra.Command {
	var requireComplete bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render front-end files from stored answers",
		Long: `Render Landing.vue, components/StatsChart.vue and App.vue into the
configured output directory. Unanswered or skipped questions use defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}

			a, err := e.store().Load()
			if err != nil {
				return clierr.Classify("loading answers", err)
			}

			if requireComplete {
				s, err := e.schema()
				if err != nil {
					return err
				}
				res, err := questionnaire.Evaluate(s, "", a, "")
				if err != nil {
					return clierr.Classify("checking answers", err)
				}
				if !res.Complete {
					return clierr.Newf(clierr.ExitFailure, "questionnaire incomplete: %s is unanswered", res.PendingKey())
				}
			}

			g := &scaffold.Generator{
				TemplatesDir: e.cfg.TemplatesDir,
				OutDir:       e.cfg.OutputDir,
				Log:          e.log,
			}
			written, err := g.Generate(a)
			if err != nil {
				return clierr.Classify("generating files", err)
			}

			for _, p := range written {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", strings.TrimPrefix(p, e.root+"/"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&requireComplete, "require-complete", false, "fail unless every question is answered or skipped")
	return cmd
}
