// Package cli implements the aztoken subcommands: resolving the target
// identity from flags, profiles, and repository context, then translating
// and launching the helper invocation.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nauticalab/aztoken/internal/command"
	"github.com/nauticalab/aztoken/internal/config"
	"github.com/nauticalab/aztoken/internal/gitinfo"
	"github.com/nauticalab/aztoken/internal/launcher"
)

// RequestOptions holds the flag values for the auth and clear commands.
type RequestOptions struct {
	Client  string
	Tenant  string
	Scopes  []string
	Profile string

	HelperPath string
	DryRun     bool
	Verbose    bool
}

// AuthRun acquires a token for the resolved identity.
func AuthRun(opts RequestOptions) {
	run(command.ActionAuth, opts)
}

// ClearRun clears the helper's cached token for the resolved identity.
func ClearRun(opts RequestOptions) {
	run(command.ActionClear, opts)
}

func run(action command.Action, opts RequestOptions) {
	cfg, err := config.LoadCLIConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cmd, err := Resolve(action, opts, cfg, detectRepo(opts.Verbose))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	args := command.Translate(cmd)

	helperPath := cfg.HelperPath
	if opts.HelperPath != "" {
		helperPath = opts.HelperPath
	}

	if opts.Verbose {
		fmt.Printf("Helper: %s\n", helperPath)
		fmt.Printf("Arguments: %s\n", strings.Join(args, " "))
	}

	if opts.DryRun {
		fmt.Printf("🔍 Dry run - would launch: %s %s\n", helperPath, strings.Join(args, " "))
		return
	}

	if err := launcher.New(helperPath).Run(context.Background(), args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(launcher.ExitCode(err))
	}

	if opts.Verbose {
		fmt.Printf("✅ Helper completed (%s)\n", action)
	}
}

// Resolve builds the validated Command for an invocation. Precedence per
// field: explicit flag, then the named profile (which must exist when
// requested), then a profile matched against the repository's remotes.
// Whatever remains unset fails command.New's validation.
func Resolve(action command.Action, opts RequestOptions, cfg *config.CLIConfig, repo *gitinfo.Info) (command.Command, error) {
	profile := (*config.Profile)(nil)

	if opts.Profile != "" {
		profile = cfg.FindProfile(opts.Profile)
		if profile == nil {
			return command.Command{}, fmt.Errorf("profile %q not found in config", opts.Profile)
		}
	} else if repo != nil && (opts.Client == "" || opts.Tenant == "" || len(opts.Scopes) == 0) {
		profile = cfg.MatchRemote(repo.RemoteURLs)
	}

	client, tenant, scopes := opts.Client, opts.Tenant, opts.Scopes
	if profile != nil {
		if client == "" {
			client = profile.Client
		}
		if tenant == "" {
			tenant = profile.Tenant
		}
		if len(scopes) == 0 {
			scopes = profile.Scopes
		}
	}

	return command.New(action, client, tenant, scopes)
}

// detectRepo returns repository context for profile matching, or nil when
// the working directory is not inside a checkout.
func detectRepo(verbose bool) *gitinfo.Info {
	info, err := gitinfo.Detect(".")
	if err != nil {
		if verbose {
			fmt.Printf("No repository context: %v\n", err)
		}
		return nil
	}
	return info
}
