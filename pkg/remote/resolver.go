// Package remote extracts the hosting account name from version-control
// remote URLs.
package remote

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRemoteURL is returned when a remote URL matches neither the
// HTTPS nor the SSH form. The capitalized message is part of the output
// contract: callers print it verbatim and downstream tooling matches on
// the word "Invalid".
var ErrInvalidRemoteURL = errors.New("Invalid remote URL")

// The two recognized remote URL grammars, tried in order. The scheme
// token is matched exactly: foo://… must not fall through to the HTTPS
// rule even though it otherwise has the same shape.
var (
	httpsPattern = regexp.MustCompile(`^https://[^/]+/([^/]+?)/([^/]+?)(?:\.git)?$`)
	sshPattern   = regexp.MustCompile(`^git@[^:/]+:([^/]+?)/([^/]+?)(?:\.git)?$`)
)

// Parse splits a remote URL into its owner and repository segments.
// Supported forms:
//   - HTTPS: https://<host>/<owner>/<repo>[.git]
//   - SSH (scp-like): git@<host>:<owner>/<repo>[.git]
//
// Parsing is purely syntactic; no network access is involved.
func Parse(remoteURL string) (owner, repo string, err error) {
	for _, pattern := range []*regexp.Regexp{httpsPattern, sshPattern} {
		if m := pattern.FindStringSubmatch(remoteURL); m != nil {
			return m[1], m[2], nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", ErrInvalidRemoteURL, remoteURL)
}

// Resolve extracts the account name from a remote URL, normalized to
// lowercase. The returned error, if any, carries the verbatim input.
func Resolve(remoteURL string) (string, error) {
	owner, _, err := Parse(remoteURL)
	if err != nil {
		return "", err
	}
	return strings.ToLower(owner), nil
}

// RepositoryName extracts the repository segment from a remote URL,
// without the .git suffix.
func RepositoryName(remoteURL string) (string, error) {
	_, repo, err := Parse(remoteURL)
	if err != nil {
		return "", err
	}
	return repo, nil
}
