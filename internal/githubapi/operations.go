package githubapi

import (
	"context"
	"net/http"
	"net/url"
)

// Single-call operations: each method maps one to one onto a REST endpoint.
// Issue and pull request identifiers are strings because several of them
// come out of commit-message parsing rather than typed API responses.

// ListOpenIssues fetches the first page of open issues for the repository.
func (c *Client) ListOpenIssues(ctx context.Context) ([]Issue, error) {
	var issues []Issue
	err := c.do(ctx, http.MethodGet, c.repoPath("issues"), nil, &issues)
	return issues, err
}

// GetIssue fetches a single issue. Pull request numbers resolve here too:
// the issues endpoint returns the matching metadata for both.
func (c *Client) GetIssue(ctx context.Context, number string) (Issue, error) {
	var issue Issue
	err := c.do(ctx, http.MethodGet, c.repoPath("issues/%s", number), nil, &issue)
	return issue, err
}

// CloseIssue marks an issue as closed.
func (c *Client) CloseIssue(ctx context.Context, number string) (Issue, error) {
	var issue Issue
	body := map[string]string{"state": "closed"}
	err := c.do(ctx, http.MethodPatch, c.repoPath("issues/%s", number), body, &issue)
	return issue, err
}

// AddComment posts a comment on an issue or pull request.
func (c *Client) AddComment(ctx context.Context, number, message string) (Comment, error) {
	var comment Comment
	body := map[string]string{"body": message}
	err := c.do(ctx, http.MethodPost, c.repoPath("issues/%s/comments", number), body, &comment)
	return comment, err
}

// ListComments fetches the comments on an issue or pull request.
func (c *Client) ListComments(ctx context.Context, number string) ([]Comment, error) {
	var comments []Comment
	err := c.do(ctx, http.MethodGet, c.repoPath("issues/%s/comments", number), nil, &comments)
	return comments, err
}

// AddLabels attaches labels to an issue or pull request and returns the
// resulting label set.
func (c *Client) AddLabels(ctx context.Context, number string, labels []string) ([]Label, error) {
	var result []Label
	body := map[string][]string{"labels": labels}
	err := c.do(ctx, http.MethodPost, c.repoPath("issues/%s/labels", number), body, &result)
	return result, err
}

// RemoveLabel detaches one label from an issue or pull request.
func (c *Client) RemoveLabel(ctx context.Context, number, label string) error {
	return c.do(ctx, http.MethodDelete, c.repoPath("issues/%s/labels/%s", number, url.PathEscape(label)), nil, nil)
}

// GetPullRequest fetches a pull request.
func (c *Client) GetPullRequest(ctx context.Context, number string) (PullRequest, error) {
	var pr PullRequest
	err := c.do(ctx, http.MethodGet, c.repoPath("pulls/%s", number), nil, &pr)
	return pr, err
}

// ListPullRequestCommits fetches the commits of a pull request, a single
// page of up to 99 entries.
func (c *Client) ListPullRequestCommits(ctx context.Context, number string) ([]Commit, error) {
	var commits []Commit
	err := c.do(ctx, http.MethodGet, c.repoPath("pulls/%s/commits?per_page=99", number), nil, &commits)
	return commits, err
}

// ListReviews fetches the reviews on a pull request.
func (c *Client) ListReviews(ctx context.Context, number string) ([]Review, error) {
	var reviews []Review
	err := c.do(ctx, http.MethodGet, c.repoPath("pulls/%s/reviews", number), nil, &reviews)
	return reviews, err
}

// DismissReview dismisses a review on a pull request with the given
// message.
func (c *Client) DismissReview(ctx context.Context, number string, reviewID int64, message string) (Review, error) {
	var review Review
	body := map[string]string{"message": message}
	err := c.do(ctx, http.MethodPut, c.repoPath("pulls/%s/reviews/%d/dismissals", number, reviewID), body, &review)
	return review, err
}

// GetCommit fetches a single commit, including its file-change list.
func (c *Client) GetCommit(ctx context.Context, sha string) (Commit, error) {
	var commit Commit
	err := c.do(ctx, http.MethodGet, c.repoPath("commits/%s", sha), nil, &commit)
	return commit, err
}

// CreatePullRequest opens a pull request.
func (c *Client) CreatePullRequest(ctx context.Context, input NewPullRequest) (PullRequest, error) {
	var pr PullRequest
	err := c.do(ctx, http.MethodPost, c.repoPath("pulls"), input, &pr)
	return pr, err
}
