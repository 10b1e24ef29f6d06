package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/aztoken/internal/cli"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear a cached token",
	Long: `Clear the helper's cached token for a client and tenant with the
requested scopes. Identity resolution works exactly as for auth.

Examples:
  aztoken clear --client app-id --tenant tenant-id --scope api://app/.default
  aztoken clear --profile work`,
	Run: func(cmd *cobra.Command, args []string) {
		cli.ClearRun(requestOptions())
	},
}

func init() {
	addRequestFlags(clearCmd)
}
