// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/bartekus/autoui/cmd/autoui/commands"
	"github.com/bartekus/autoui/cmd/autoui/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, clierr.Format(err))
		os.Exit(clierr.ExitCodeOf(err))
	}
}
