package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository with one commit and the given remotes.
func initTestRepo(t *testing.T, remotes map[string][]string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("test\n"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)
	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	for name, urls := range remotes {
		_, err := repo.CreateRemote(&gitconfig.RemoteConfig{Name: name, URLs: urls})
		require.NoError(t, err)
	}

	return dir
}

func TestDetect(t *testing.T) {
	dir := initTestRepo(t, map[string][]string{
		"origin":   {"https://dev.azure.com/contoso/proj/_git/repo"},
		"upstream": {"https://github.com/contoso/repo"},
	})

	info, err := Detect(dir)
	require.NoError(t, err)

	assert.Len(t, info.CommitHash, 40)
	assert.NotEmpty(t, info.Branch)
	assert.False(t, info.IsDirty)

	// origin URLs come first
	require.Len(t, info.RemoteURLs, 2)
	assert.Equal(t, "https://dev.azure.com/contoso/proj/_git/repo", info.RemoteURLs[0])
	assert.Equal(t, "https://github.com/contoso/repo", info.RemoteURLs[1])
}

func TestDetect_SeeksUpward(t *testing.T) {
	dir := initTestRepo(t, nil)
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	info, err := Detect(nested)
	require.NoError(t, err)
	assert.NotEmpty(t, info.CommitHash)
}

func TestDetect_Dirty(t *testing.T) {
	dir := initTestRepo(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.txt"), []byte("x"), 0o644))

	info, err := Detect(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDirty)
}

func TestDetect_NotARepo(t *testing.T) {
	_, err := Detect(t.TempDir())
	require.Error(t, err)
}
