// Package ops contains the operation registry and the composite workflows
// that chain multiple API calls: resolving pull requests from commit
// messages, collecting the day's deploy pull requests, and driving
// label-based merge-state transitions.
package ops

import (
	"context"
	"time"

	"github.com/deployline/gh-pilot/internal/common"
	"github.com/deployline/gh-pilot/internal/errors"
	"github.com/deployline/gh-pilot/internal/githubapi"
)

// Client is the API surface the operations consume. *githubapi.Client
// satisfies it; tests inject fakes.
type Client interface {
	ListOpenIssues(ctx context.Context) ([]githubapi.Issue, error)
	GetIssue(ctx context.Context, number string) (githubapi.Issue, error)
	CloseIssue(ctx context.Context, number string) (githubapi.Issue, error)
	AddComment(ctx context.Context, number, message string) (githubapi.Comment, error)
	ListComments(ctx context.Context, number string) ([]githubapi.Comment, error)
	AddLabels(ctx context.Context, number string, labels []string) ([]githubapi.Label, error)
	RemoveLabel(ctx context.Context, number, label string) error
	GetPullRequest(ctx context.Context, number string) (githubapi.PullRequest, error)
	ListPullRequestCommits(ctx context.Context, number string) ([]githubapi.Commit, error)
	ListReviews(ctx context.Context, number string) ([]githubapi.Review, error)
	DismissReview(ctx context.Context, number string, reviewID int64, message string) (githubapi.Review, error)
	GetCommit(ctx context.Context, sha string) (githubapi.Commit, error)
	CreatePullRequest(ctx context.Context, input githubapi.NewPullRequest) (githubapi.PullRequest, error)
}

// Env carries everything an operation needs beyond its extras: the API
// client, the logger, the pull request number from the command line, and
// the clock (injectable so the dated deploy-issue lookup is testable).
type Env struct {
	Client Client
	Logger common.Logger
	PR     string
	Now    func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// requirePR returns the pull request number from the invocation or a
// ConfigError when none was supplied.
func (e *Env) requirePR() (string, error) {
	if e.PR == "" {
		return "", errors.NewConfigError("a pull request number is required for this command (--pr)")
	}
	return e.PR, nil
}
