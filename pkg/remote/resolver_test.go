//go:build unit
// +build unit

package remote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_HTTPS(t *testing.T) {
	user, err := Resolve("https://github.com/User_Name/repo_name")
	require.NoError(t, err)
	require.Equal(t, "user_name", user)
}

func TestResolve_HTTPSWithGitSuffix(t *testing.T) {
	user, err := Resolve("https://github.com/User_Name/repo_name.git")
	require.NoError(t, err)
	require.Equal(t, "user_name", user)
}

func TestResolve_SSH(t *testing.T) {
	user, err := Resolve("git@github.com:User_Name/repo_name.git")
	require.NoError(t, err)
	require.Equal(t, "user_name", user)
}

func TestResolve_SSHWithoutGitSuffix(t *testing.T) {
	user, err := Resolve("git@github.com:User_Name/repo_name")
	require.NoError(t, err)
	require.Equal(t, "user_name", user)
}

func TestResolve_LowercasesOwner(t *testing.T) {
	mixed, err := Resolve("https://github.com/User_Name/repo_name")
	require.NoError(t, err)
	lower, err := Resolve("https://github.com/user_name/repo_name")
	require.NoError(t, err)
	require.Equal(t, lower, mixed)
}

func TestResolve_UnknownScheme(t *testing.T) {
	url := "foo://bar@github.com/user/repo.git"
	_, err := Resolve(url)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidRemoteURL)
	require.Contains(t, err.Error(), "Invalid")
	require.Contains(t, err.Error(), url)
}

func TestResolve_EmptyInput(t *testing.T) {
	_, err := Resolve("")
	require.ErrorIs(t, err, ErrInvalidRemoteURL)
}

func TestResolve_Malformed(t *testing.T) {
	for _, url := range []string{
		"https://github.com/only-owner",
		"https://github.com/a/b/c",
		"git@github.com/owner/repo.git",
		"github.com/owner/repo",
		"http://github.com/owner/repo",
	} {
		_, err := Resolve(url)
		require.ErrorIs(t, err, ErrInvalidRemoteURL, "expected failure for %q", url)
		require.Contains(t, err.Error(), url)
	}
}

func TestResolve_NonGitHubHost(t *testing.T) {
	// Only the scheme token is fixed, the host is not.
	user, err := Resolve("https://gitlab.example.com/Owner/repo")
	require.NoError(t, err)
	require.Equal(t, "owner", user)

	user, err = Resolve("git@gitlab.example.com:Owner/repo.git")
	require.NoError(t, err)
	require.Equal(t, "owner", user)
}

func TestResolve_Idempotent(t *testing.T) {
	url := "git@github.com:User_Name/repo_name.git"
	first, err1 := Resolve(url)
	second, err2 := Resolve(url)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, first, second)
}

func TestParse_ReturnsOwnerAndRepo(t *testing.T) {
	owner, repo, err := Parse("https://github.com/Owner/Repo.git")
	require.NoError(t, err)
	require.Equal(t, "Owner", owner)
	require.Equal(t, "Repo", repo)
}

func TestRepositoryName(t *testing.T) {
	repo, err := RepositoryName("git@github.com:owner/some-repo.git")
	require.NoError(t, err)
	require.Equal(t, "some-repo", repo)
}
