package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bartekus/autoui/internal/projection"
)

// NewSchemaCommand returns the `autoui schema` command group.
func NewSchemaCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the question schema",
	}
	cmd.AddCommand(newSchemaValidateCommand(opts))
	return cmd
}

func newSchemaValidateCommand(opts *globalOptions) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the question schema (unique keys, ids, questions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if schemaPath != "" {
				e.cfg.SchemaPath = schemaPath
			}

			s, err := e.schema()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(s.Sections))
			for _, sec := range s.Sections {
				rows = append(rows, []string{sec.ID, sec.Title, strconv.Itoa(len(sec.Questions))})
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, projection.RenderTable([]string{"Section", "Title", "Questions"}, rows))
			_, _ = fmt.Fprintf(out, "✓ Schema valid: %d sections, %d questions\n", len(s.Sections), len(s.Keys()))
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "schema file to validate (default from config)")
	return cmd
}
