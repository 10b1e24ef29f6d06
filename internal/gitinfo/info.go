// Package gitinfo inspects the git repository enclosing the working
// directory. The CLI uses it to pick an identity profile from the checkout's
// remotes and to show repository context in verbose output.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Info holds the repository facts the CLI cares about.
type Info struct {
	// CommitHash is the current HEAD commit hash
	CommitHash string
	// Branch is the current branch name
	Branch string
	// RemoteURLs lists every URL of every configured remote, origin first
	RemoteURLs []string
	// IsDirty indicates if the working tree has uncommitted changes
	IsDirty bool
}

// Detect opens the repository that path belongs to, seeking upwards if
// necessary. A path outside any repository returns an error; callers that
// use repository context opportunistically should treat that as "no info",
// not as a failure.
func Detect(path string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a git repository that path %q belongs to: %w", path, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	var remoteURLs []string
	// origin first so that profile matching prefers it
	for _, remote := range remotes {
		if remote.Config().Name == "origin" {
			remoteURLs = append(remoteURLs, remote.Config().URLs...)
		}
	}
	for _, remote := range remotes {
		if remote.Config().Name != "origin" {
			remoteURLs = append(remoteURLs, remote.Config().URLs...)
		}
	}

	return &Info{
		CommitHash: headRef.Hash().String(),
		Branch:     headRef.Name().Short(),
		RemoteURLs: remoteURLs,
		IsDirty:    !status.IsClean(),
	}, nil
}
