//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=client.go -destination=mock.gen.go -package=github
package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"
)

// GetRepositoryParams contains parameters for GetRepository.
type GetRepositoryParams struct {
	Owner string
	Repo  string
}

// Repository describes a hosted repository, reduced to the fields the
// check-remote command reports.
type Repository struct {
	FullName      string
	DefaultBranch string
	Private       bool
}

// Client defines the interface for interacting with GitHub.
type Client interface {
	GetRepository(ctx context.Context, params GetRepositoryParams) (*Repository, error)
}

// client implements Client using go-github.
type client struct {
	gh *github.Client
}

// New creates a new GitHub client. An empty token yields an
// unauthenticated client, sufficient for public repositories.
func New(token string) Client {
	if token == "" {
		return &client{gh: github.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	gh := github.NewClient(oauth2.NewClient(context.Background(), ts))
	return &client{gh: gh}
}

// GetRepository retrieves repository metadata from GitHub.
func (c *client) GetRepository(ctx context.Context, params GetRepositoryParams) (*Repository, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, params.Owner, params.Repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", params.Owner, params.Repo, err)
	}
	return &Repository{
		FullName:      repo.GetFullName(),
		DefaultBranch: repo.GetDefaultBranch(),
		Private:       repo.GetPrivate(),
	}, nil
}
