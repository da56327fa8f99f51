// SPDX-License-Identifier: AGPL-3.0-or-later

/*
AutoUI - drives an issue-comment questionnaire and generates front-end files
from the collected answers.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the autoui root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("AUTOUI_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "autoui",
		Short:         "AutoUI - issue-driven questionnaire automation",
		Long:          "AutoUI reads an issue conversation, tracks questionnaire answers and renders front-end files from them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default .autoui/config.yml)")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "run as if started in this directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of autoui",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "autoui version %s\n", version)
		},
	})

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewEvaluateCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewAnswersCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}
