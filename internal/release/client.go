// Package release checks GitHub releases for newer wpplugin versions.
package release

import (
	"context"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/go-github/v84/github"
)

var (
	// ErrRateLimitExceeded is returned when the GitHub API rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("github API rate limit exceeded")

	// ErrRepositoryNotFound is returned when the release repository does not exist
	// or has no published releases.
	ErrRepositoryNotFound = errors.New("repository not found")
)

// Release represents a GitHub release.
type Release struct {
	TagName string
	Name    string
	HTMLURL string
}

// Client defines the interface for GitHub release operations.
type Client interface {
	// GetLatestRelease retrieves the latest release for a repository.
	GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error)

	// IsAuthenticated returns whether the client sends an API token.
	IsAuthenticated() bool
}

// SDKClient implements Client using the go-github SDK.
type SDKClient struct {
	client        *github.Client
	authenticated bool
}

// NewClient creates a GitHub client. A token from GH_TOKEN or GITHUB_TOKEN
// raises the API rate limit; without one, requests are anonymous.
func NewClient() *SDKClient {
	token := getToken()
	authenticated := token != ""

	var httpClient *http.Client
	if authenticated {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}

	return &SDKClient{
		client:        github.NewClient(httpClient),
		authenticated: authenticated,
	}
}

// getToken retrieves a GitHub token from the environment.
func getToken() string {
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	return os.Getenv("GITHUB_TOKEN")
}

// authTransport adds the authentication header to requests.
type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)

	return http.DefaultTransport.RoundTrip(req)
}

// IsAuthenticated returns whether the client sends an API token.
func (c *SDKClient) IsAuthenticated() bool {
	return c.authenticated
}

// GetLatestRelease retrieves the latest release for a repository.
func (c *SDKClient) GetLatestRelease(
	ctx context.Context,
	owner, repo string,
) (*Release, error) {
	release, resp, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, handleError(resp, err)
	}

	return &Release{
		TagName: release.GetTagName(),
		Name:    release.GetName(),
		HTMLURL: release.GetHTMLURL(),
	}, nil
}

// handleError converts GitHub API errors to package error types.
func handleError(resp *github.Response, err error) error {
	if resp == nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrRepositoryNotFound
	case http.StatusForbidden:
		// Check if it's rate limit
		if resp.Rate.Remaining == 0 {
			return ErrRateLimitExceeded
		}

		return err
	default:
		return err
	}
}
