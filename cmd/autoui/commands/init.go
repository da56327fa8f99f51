package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/autoui/cmd/autoui/internal/clierr"
	"github.com/bartekus/autoui/internal/config"
	"github.com/bartekus/autoui/internal/console"
	"github.com/bartekus/autoui/internal/projection"
	"github.com/bartekus/autoui/internal/projectroot"
)

// NewInitCommand returns `autoui init`, which writes the default project config.
func NewInitCommand(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented .autoui/config.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := console.New(cmd.ErrOrStderr(), opts.verbose)

			root, err := projectroot.Find(opts.dir)
			if err != nil {
				return clierr.Wrap(clierr.ExitUsage, "finding repository root", err)
			}
			path := filepath.Join(root, config.ProjectConfigPath())

			if _, err := os.Stat(path); err == nil && !force {
				return clierr.Newf(clierr.ExitUsage, "%s already exists (use --force to overwrite)", path)
			}
			if err := projection.AtomicWrite(path, []byte(config.GetDefaultConfigTemplate()), projection.SourceMode); err != nil {
				return clierr.Wrap(clierr.ExitFailure, "writing config", err)
			}
			log.Successf("wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}
