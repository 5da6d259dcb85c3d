package ops

import (
	"context"
	"fmt"

	"github.com/deployline/gh-pilot/internal/githubapi"
)

// FakeClient implements Client for tests. Unset function fields make the
// corresponding call fail, so a test only wires the endpoints it expects
// the operation to touch.
type FakeClient struct {
	ListOpenIssuesFunc         func(ctx context.Context) ([]githubapi.Issue, error)
	GetIssueFunc               func(ctx context.Context, number string) (githubapi.Issue, error)
	CloseIssueFunc             func(ctx context.Context, number string) (githubapi.Issue, error)
	AddCommentFunc             func(ctx context.Context, number, message string) (githubapi.Comment, error)
	ListCommentsFunc           func(ctx context.Context, number string) ([]githubapi.Comment, error)
	AddLabelsFunc              func(ctx context.Context, number string, labels []string) ([]githubapi.Label, error)
	RemoveLabelFunc            func(ctx context.Context, number, label string) error
	GetPullRequestFunc         func(ctx context.Context, number string) (githubapi.PullRequest, error)
	ListPullRequestCommitsFunc func(ctx context.Context, number string) ([]githubapi.Commit, error)
	ListReviewsFunc            func(ctx context.Context, number string) ([]githubapi.Review, error)
	DismissReviewFunc          func(ctx context.Context, number string, reviewID int64, message string) (githubapi.Review, error)
	GetCommitFunc              func(ctx context.Context, sha string) (githubapi.Commit, error)
	CreatePullRequestFunc      func(ctx context.Context, input githubapi.NewPullRequest) (githubapi.PullRequest, error)
}

func (f *FakeClient) ListOpenIssues(ctx context.Context) ([]githubapi.Issue, error) {
	if f.ListOpenIssuesFunc == nil {
		return nil, fmt.Errorf("unexpected call: ListOpenIssues")
	}
	return f.ListOpenIssuesFunc(ctx)
}

func (f *FakeClient) GetIssue(ctx context.Context, number string) (githubapi.Issue, error) {
	if f.GetIssueFunc == nil {
		return githubapi.Issue{}, fmt.Errorf("unexpected call: GetIssue(%s)", number)
	}
	return f.GetIssueFunc(ctx, number)
}

func (f *FakeClient) CloseIssue(ctx context.Context, number string) (githubapi.Issue, error) {
	if f.CloseIssueFunc == nil {
		return githubapi.Issue{}, fmt.Errorf("unexpected call: CloseIssue(%s)", number)
	}
	return f.CloseIssueFunc(ctx, number)
}

func (f *FakeClient) AddComment(ctx context.Context, number, message string) (githubapi.Comment, error) {
	if f.AddCommentFunc == nil {
		return githubapi.Comment{}, fmt.Errorf("unexpected call: AddComment(%s)", number)
	}
	return f.AddCommentFunc(ctx, number, message)
}

func (f *FakeClient) ListComments(ctx context.Context, number string) ([]githubapi.Comment, error) {
	if f.ListCommentsFunc == nil {
		return nil, fmt.Errorf("unexpected call: ListComments(%s)", number)
	}
	return f.ListCommentsFunc(ctx, number)
}

func (f *FakeClient) AddLabels(ctx context.Context, number string, labels []string) ([]githubapi.Label, error) {
	if f.AddLabelsFunc == nil {
		return nil, fmt.Errorf("unexpected call: AddLabels(%s)", number)
	}
	return f.AddLabelsFunc(ctx, number, labels)
}

func (f *FakeClient) RemoveLabel(ctx context.Context, number, label string) error {
	if f.RemoveLabelFunc == nil {
		return fmt.Errorf("unexpected call: RemoveLabel(%s, %s)", number, label)
	}
	return f.RemoveLabelFunc(ctx, number, label)
}

func (f *FakeClient) GetPullRequest(ctx context.Context, number string) (githubapi.PullRequest, error) {
	if f.GetPullRequestFunc == nil {
		return githubapi.PullRequest{}, fmt.Errorf("unexpected call: GetPullRequest(%s)", number)
	}
	return f.GetPullRequestFunc(ctx, number)
}

func (f *FakeClient) ListPullRequestCommits(ctx context.Context, number string) ([]githubapi.Commit, error) {
	if f.ListPullRequestCommitsFunc == nil {
		return nil, fmt.Errorf("unexpected call: ListPullRequestCommits(%s)", number)
	}
	return f.ListPullRequestCommitsFunc(ctx, number)
}

func (f *FakeClient) ListReviews(ctx context.Context, number string) ([]githubapi.Review, error) {
	if f.ListReviewsFunc == nil {
		return nil, fmt.Errorf("unexpected call: ListReviews(%s)", number)
	}
	return f.ListReviewsFunc(ctx, number)
}

func (f *FakeClient) DismissReview(ctx context.Context, number string, reviewID int64, message string) (githubapi.Review, error) {
	if f.DismissReviewFunc == nil {
		return githubapi.Review{}, fmt.Errorf("unexpected call: DismissReview(%s, %d)", number, reviewID)
	}
	return f.DismissReviewFunc(ctx, number, reviewID, message)
}

func (f *FakeClient) GetCommit(ctx context.Context, sha string) (githubapi.Commit, error) {
	if f.GetCommitFunc == nil {
		return githubapi.Commit{}, fmt.Errorf("unexpected call: GetCommit(%s)", sha)
	}
	return f.GetCommitFunc(ctx, sha)
}

func (f *FakeClient) CreatePullRequest(ctx context.Context, input githubapi.NewPullRequest) (githubapi.PullRequest, error) {
	if f.CreatePullRequestFunc == nil {
		return githubapi.PullRequest{}, fmt.Errorf("unexpected call: CreatePullRequest")
	}
	return f.CreatePullRequestFunc(ctx, input)
}
