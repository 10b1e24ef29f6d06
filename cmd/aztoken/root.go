package main

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aztoken",
	Short: "Acquire or clear cached Azure tokens via the azureauth helper",
	Long: `aztoken is a thin front end for the azureauth credential helper.

It turns a typed request (client, tenant, and one or more scopes) into the
helper's command line and launches it. Token acquisition, caching, and the
OAuth exchange itself all happen inside the helper.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands to root
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(versionCmd)
}
