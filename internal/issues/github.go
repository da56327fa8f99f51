// Package issues fetches issue threads from GitHub and turns them into the
// text the questionnaire scans.
package issues

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/bartekus/autoui/internal/console"
)

// Issue is the subset of issue fields the questionnaire needs.
type Issue struct {
	Number int
	Title  string
	Body   string
	Labels []string
}

// Comment is a single issue comment.
type Comment struct {
	Author    string
	Body      string
	CreatedAt time.Time
}

// Client is the issue-tracker surface used by the CLI.
type Client interface {
	GetIssue(ctx context.Context, number int) (*Issue, error)
	ListComments(ctx context.Context, number int) ([]Comment, error)
}

// runFunc executes gh with args and returns stdout.
type runFunc func(ctx context.Context, args ...string) ([]byte, error)

// GitHubClient talks to GitHub through the gh CLI, so it inherits whatever
// authentication gh has (GH_TOKEN in workflows).
type GitHubClient struct {
	Repo    string // owner/name; empty means the current repository
	Timeout time.Duration
	Retry   RetryConfig
	Log     *console.Logger

	run runFunc
}

// NewGitHubClient creates a client for repo.
func NewGitHubClient(repo string, timeout time.Duration, retry RetryConfig, log *console.Logger) *GitHubClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	c := &GitHubClient{Repo: repo, Timeout: timeout, Retry: retry, Log: log}
	c.run = c.gh
	return c
}

func (c *GitHubClient) gh(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	return RunWithRetry(ctx, c.Retry, c.Log, "gh", args...)
}

func (c *GitHubClient) viewArgs(number int, fields string) []string {
	args := []string{"issue", "view", strconv.Itoa(number), "--json", fields}
	if c.Repo != "" {
		args = append(args, "--repo", c.Repo)
	}
	return args
}

// GetIssue fetches the issue title, body and labels.
func (c *GitHubClient) GetIssue(ctx context.Context, number int) (*Issue, error) {
	out, err := c.run(ctx, c.viewArgs(number, "number,title,body,labels")...)
	if err != nil {
		return nil, fmt.Errorf("fetching issue %d: %w", number, err)
	}

	var result struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		Labels []struct {
			Name string `json:"name"`
		} `json:"labels"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("failed to parse issue JSON: %w", err)
	}

	labels := make([]string, len(result.Labels))
	for i, l := range result.Labels {
		labels[i] = l.Name
	}
	return &Issue{
		Number: result.Number,
		Title:  result.Title,
		Body:   result.Body,
		Labels: labels,
	}, nil
}

// ListComments fetches all comments on the issue in chronological order.
func (c *GitHubClient) ListComments(ctx context.Context, number int) ([]Comment, error) {
	out, err := c.run(ctx, c.viewArgs(number, "comments")...)
	if err != nil {
		return nil, fmt.Errorf("fetching comments for issue %d: %w", number, err)
	}

	var result struct {
		Comments []struct {
			Author struct {
				Login string `json:"login"`
			} `json:"author"`
			Body      string    `json:"body"`
			CreatedAt time.Time `json:"createdAt"`
		} `json:"comments"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("failed to parse comments JSON: %w", err)
	}

	comments := make([]Comment, len(result.Comments))
	for i, rc := range result.Comments {
		comments[i] = Comment{Author: rc.Author.Login, Body: rc.Body, CreatedAt: rc.CreatedAt}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}
