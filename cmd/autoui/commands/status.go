package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bartekus/autoui/internal/projection"
)

// NewStatusCommand returns `autoui status`, a read-only progress view of an issue.
func NewStatusCommand(opts *globalOptions) *cobra.Command {
	var number int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show questionnaire progress for an issue without saving",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}

			ev, err := evaluateIssue(cmd.Context(), e, number)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(projection.RenderHeader(1, fmt.Sprintf("Issue #%d: %s", ev.thread.Issue.Number, ev.thread.Issue.Title)))
			if !ev.hasLabel {
				b.WriteString(fmt.Sprintf("%s label missing.\n", e.cfg.Label))
				_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
				return err
			}

			res := ev.result
			b.WriteString(res.StatusBlock)
			b.WriteString("\n\n")

			if res.Complete {
				b.WriteString("Questionnaire complete.\n")
			} else {
				b.WriteString(projection.RenderHeader(2, "Next: "+res.Section.Title))
				if res.Section.Intro != "" {
					b.WriteString(res.Section.Intro + "\n\n")
				}
				if len(res.Section.Links) > 0 {
					b.WriteString(projection.RenderList(res.Section.Links))
					b.WriteString("\n")
				}
				b.WriteString(res.NextPrompt + "\n")
			}
			if res.WantsSkip {
				b.WriteString("\nLast comment asked to skip.\n")
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().IntVar(&number, "issue", 0, "issue number to inspect")
	_ = cmd.MarkFlagRequired("issue")

	return cmd
}
