// Package github fetches repository trees and file contents from GitHub.
package github

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

// OwnerType represents the type of account owner (User or Organization).
type OwnerType string

const (
	// OwnerTypeUser represents a user account.
	OwnerTypeUser OwnerType = "User"
	// OwnerTypeOrganization represents an organization account.
	OwnerTypeOrganization OwnerType = "Organization"

	pageSize = 100
)

// ClientOptions configures the GitHub API client.
type ClientOptions struct {
	Host         string
	AuthToken    string
	CacheDir     string
	CacheTTL     time.Duration
	DisableCache bool
}

// Client wraps the go-gh REST and GraphQL clients.
type Client struct {
	rest    *api.RESTClient
	graphql *api.GraphQLClient
}

// NewClient creates a new GitHub API client with the given options.
func NewClient(opts ClientOptions) (*Client, error) {
	apiOpts := api.ClientOptions{
		Host:        opts.Host,
		AuthToken:   opts.AuthToken,
		CacheDir:    opts.CacheDir,
		CacheTTL:    opts.CacheTTL,
		EnableCache: !opts.DisableCache,
	}

	rest, err := api.NewRESTClient(apiOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	graphql, err := api.NewGraphQLClient(apiOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub GraphQL client: %w", err)
	}

	return &Client{
		rest:    rest,
		graphql: graphql,
	}, nil
}

// GetOwnerType determines if a name is a "User" or "Organization".
func (c *Client) GetOwnerType(ctx context.Context, name string) (OwnerType, error) {
	var result struct {
		Type OwnerType `json:"type"`
	}

	endpoint := fmt.Sprintf("users/%s", name)
	err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &result)
	if err != nil {
		return "", fmt.Errorf("failed to get owner type for %s: %w", name, err)
	}

	return result.Type, nil
}

// ListRepos returns the repositories of a user or organization with
// pagination. It detects whether the name is a user or org and uses the
// appropriate endpoint.
func (c *Client) ListRepos(ctx context.Context, name string, filter RepoFilter) ([]Repository, error) {
	accountType, err := c.GetOwnerType(ctx, name)
	if err != nil {
		return nil, err
	}

	var baseEndpoint, typeParam string
	if accountType == OwnerTypeOrganization {
		baseEndpoint = fmt.Sprintf("orgs/%s/repos", name)
		typeParam = "sources"
		if filter.Forks {
			typeParam = "all"
		}
	} else {
		baseEndpoint = fmt.Sprintf("users/%s/repos", name)
		typeParam = "owner"
	}

	var allRepos []apiRepository
	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("%s?type=%s&per_page=%d&page=%d",
			baseEndpoint, typeParam, pageSize, page)

		var repos []apiRepository
		err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &repos)
		if err != nil {
			return nil, fmt.Errorf("failed to list repos for %s: %w", name, err)
		}

		allRepos = append(allRepos, repos...)

		if len(repos) < pageSize {
			break
		}
	}

	filtered := make([]Repository, 0, len(allRepos))
	for _, r := range allRepos {
		switch {
		case r.Size == 0:
			continue
		case r.Fork && !filter.Forks:
			continue
		case r.Archived && !filter.Archived:
			continue
		}
		filtered = append(filtered, r.repository())
	}

	return filtered, nil
}

// GetRepo fetches a single repository. An empty ref selects the default
// branch.
func (c *Client) GetRepo(ctx context.Context, owner, repo, ref string) (Repository, error) {
	var result apiRepository

	endpoint := fmt.Sprintf("repos/%s/%s", owner, repo)
	err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &result)
	if err != nil {
		return Repository{}, fmt.Errorf("failed to get repo %s/%s: %w", owner, repo, err)
	}
	if result.Size == 0 {
		return Repository{}, fmt.Errorf("repository is empty (no commits yet)")
	}

	r := result.repository()
	if ref != "" {
		r.Ref = ref
	}
	return r, nil
}

// GetTree fetches the Git tree for a repository's ref recursively.
func (c *Client) GetTree(ctx context.Context, repo Repository) (*TreeResponse, error) {
	var tree TreeResponse

	endpoint := fmt.Sprintf("repos/%s/%s/git/trees/%s?recursive=1",
		repo.Owner, repo.Name, url.PathEscape(repo.Ref))

	err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &tree)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree for %s: %w", repo.FullName, err)
	}

	return &tree, nil
}
