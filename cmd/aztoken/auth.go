package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/aztoken/internal/cli"
)

var (
	// Flags shared by the auth and clear commands
	reqClient  string
	reqTenant  string
	reqScopes  []string
	reqProfile string
	reqHelper  string
	reqDryRun  bool
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Acquire a token",
	Long: `Acquire a token for a client and tenant with the requested scopes.

Client, tenant, and scopes come from flags, from a named profile
(--profile), or from a profile matched against the current repository's
origin remote. Flags win field by field.

Examples:
  aztoken auth --client app-id --tenant tenant-id --scope api://app/.default
  aztoken auth --profile work
  aztoken auth --profile work --scope extra-scope`,
	Run: func(cmd *cobra.Command, args []string) {
		cli.AuthRun(requestOptions())
	},
}

// requestOptions collects the shared flag values for auth and clear.
func requestOptions() cli.RequestOptions {
	return cli.RequestOptions{
		Client:     reqClient,
		Tenant:     reqTenant,
		Scopes:     reqScopes,
		Profile:    reqProfile,
		HelperPath: reqHelper,
		DryRun:     reqDryRun,
		Verbose:    verbose,
	}
}

// addRequestFlags registers the shared identity flags on a command.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&reqClient, "client", "", "Client ID to request a token for")
	cmd.Flags().StringVar(&reqTenant, "tenant", "", "Tenant ID of the client")
	cmd.Flags().StringArrayVar(&reqScopes, "scope", nil, "Requested scope (repeatable)")
	cmd.Flags().StringVar(&reqProfile, "profile", "", "Named profile from the config file")
	cmd.Flags().StringVar(&reqHelper, "helper", "", "Path to the azureauth helper executable")
	cmd.Flags().BoolVar(&reqDryRun, "dry-run", false, "Print the helper command line without launching it")
}

func init() {
	addRequestFlags(authCmd)
}
