package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nauticalab/aztoken/internal/gitinfo"
)

// Version subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aztoken version %s\n", version)

		if verbose {
			fmt.Printf("  Build time: %s\n", buildTime)
			fmt.Printf("  Git commit: %s\n", gitCommit)
			fmt.Printf("  Go version: %s\n", goVersion)

			if info, err := gitinfo.Detect("."); err == nil {
				dirty := ""
				if info.IsDirty {
					dirty = " (dirty)"
				}
				fmt.Printf("  Repository: %s@%s%s\n", info.Branch, info.CommitHash, dirty)
			}
		}
	},
}
