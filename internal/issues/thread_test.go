package issues

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	issue       *Issue
	comments    []Comment
	issueErr    error
	commentsErr error
}

func (f *fakeClient) GetIssue(_ context.Context, _ int) (*Issue, error) {
	return f.issue, f.issueErr
}

func (f *fakeClient) ListComments(_ context.Context, _ int) ([]Comment, error) {
	return f.comments, f.commentsErr
}

func TestFetch(t *testing.T) {
	client := &fakeClient{
		issue:    &Issue{Number: 3, Title: "t", Body: "body"},
		comments: []Comment{{Author: "alice", Body: "a=1"}},
	}

	th, err := Fetch(context.Background(), client, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, th.Issue.Number)
	assert.Len(t, th.Comments, 1)
}

func TestFetch_Errors(t *testing.T) {
	_, err := Fetch(context.Background(), &fakeClient{}, 0)
	require.Error(t, err)

	boom := errors.New("boom")
	_, err = Fetch(context.Background(), &fakeClient{issue: &Issue{Number: 1}, commentsErr: boom}, 1)
	assert.ErrorIs(t, err, boom)

	_, err = Fetch(context.Background(), &fakeClient{issueErr: boom}, 1)
	assert.ErrorIs(t, err, boom)
}

func TestThread_Corpus(t *testing.T) {
	th := &Thread{
		Issue: Issue{Body: "intro"},
		Comments: []Comment{
			{Body: "a=1"},
			{Body: ""},
			{Body: "a=2"},
		},
	}
	assert.Equal(t, "intro\n\na=1\n\n\n\na=2", th.Corpus())

	empty := &Thread{}
	assert.Equal(t, "", empty.Corpus())
}

func TestThread_LastHumanComment(t *testing.T) {
	isBot := BotPredicate(DefaultBotLogin)

	th := &Thread{Comments: []Comment{
		{Author: "alice", Body: "product_name=Acme"},
		{Author: "bob", Body: "skip"},
		{Author: "github-actions[bot]", Body: "Next question..."},
	}}
	body, ok := th.LastHumanComment(isBot)
	assert.True(t, ok)
	assert.Equal(t, "skip", body)

	botsOnly := &Thread{Comments: []Comment{{Author: "GitHub-Actions[bot]", Body: "hi"}}}
	_, ok = botsOnly.LastHumanComment(isBot)
	assert.False(t, ok)

	// Without a predicate every author counts as human.
	body, ok = botsOnly.LastHumanComment(nil)
	assert.True(t, ok)
	assert.Equal(t, "hi", body)
}

func TestThread_HasLabel(t *testing.T) {
	th := &Thread{Issue: Issue{Labels: []string{"bug", "AutoUI"}}}
	assert.True(t, th.HasLabel("AutoUI"))
	assert.False(t, th.HasLabel("autoui"))
}
