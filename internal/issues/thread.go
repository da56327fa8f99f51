package issues

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultBotLogin is the identity GitHub Actions posts comments as.
const DefaultBotLogin = "github-actions[bot]"

// Thread is an issue together with its comments.
type Thread struct {
	Issue    Issue
	Comments []Comment
}

// Fetch loads the issue and its comments concurrently.
func Fetch(ctx context.Context, client Client, number int) (*Thread, error) {
	if number <= 0 {
		return nil, fmt.Errorf("invalid issue number %d", number)
	}

	var (
		issue    *Issue
		comments []Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		issue, err = client.GetIssue(gctx, number)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = client.ListComments(gctx, number)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, fmt.Errorf("issue %d not returned", number)
	}
	return &Thread{Issue: *issue, Comments: comments}, nil
}

// Corpus joins the issue body and every comment body, oldest first,
// separated by a blank line.
func (t *Thread) Corpus() string {
	parts := make([]string, 0, len(t.Comments)+1)
	parts = append(parts, t.Issue.Body)
	for _, c := range t.Comments {
		parts = append(parts, c.Body)
	}
	return strings.Join(parts, "\n\n")
}

// LastHumanComment returns the body of the newest comment whose author is
// not automation. ok is false when no such comment exists.
func (t *Thread) LastHumanComment(isAutomation func(author string) bool) (body string, ok bool) {
	for i := len(t.Comments) - 1; i >= 0; i-- {
		c := t.Comments[i]
		if isAutomation != nil && isAutomation(c.Author) {
			continue
		}
		return c.Body, true
	}
	return "", false
}

// HasLabel reports whether the issue carries label (exact match).
func (t *Thread) HasLabel(label string) bool {
	for _, l := range t.Issue.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// BotPredicate returns a predicate matching any of logins, case-insensitively.
func BotPredicate(logins ...string) func(string) bool {
	set := make(map[string]struct{}, len(logins))
	for _, l := range logins {
		set[strings.ToLower(strings.TrimSpace(l))] = struct{}{}
	}
	return func(author string) bool {
		_, ok := set[strings.ToLower(author)]
		return ok
	}
}
