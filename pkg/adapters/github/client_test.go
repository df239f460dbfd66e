//go:build integration
// +build integration

package github

import (
	"context"
	"os"
	"testing"
)

func TestGetRepository(t *testing.T) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		t.Skip("GITHUB_TOKEN not set; skipping integration test.")
	}

	client := New(token)
	ctx := context.Background()

	repo, err := client.GetRepository(ctx, GetRepositoryParams{
		Owner: "octocat",
		Repo:  "Hello-World",
	})
	if err != nil {
		t.Fatalf("failed to get repository: %v", err)
	}
	if repo.FullName != "octocat/Hello-World" {
		t.Errorf("unexpected full name: %s", repo.FullName)
	}
	if repo.DefaultBranch == "" {
		t.Errorf("expected a default branch, got empty result")
	}
}
