package ops

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deployline/gh-pilot/internal/errors"
	"github.com/deployline/gh-pilot/internal/githubapi"
)

// Handler runs one operation. extras is the validated JSON object from the
// command line; each handler decodes it into its own typed parameter
// struct, rejecting unrecognized keys.
type Handler func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error)

// Operation is one registry entry: a command name, a two-line description
// rendered in usage output, and its handler.
type Operation struct {
	Name    string
	Summary string
	Detail  string
	Run     Handler
}

// decodeExtras strictly decodes the extras object into params. Unknown
// keys are rejected so a typo fails loudly instead of being ignored.
func decodeExtras(name string, extras json.RawMessage, params interface{}) error {
	if len(extras) == 0 {
		extras = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(extras))
	dec.DisallowUnknownFields()
	if err := dec.Decode(params); err != nil {
		return errors.NewConfigError("invalid extras for %s: %v", name, err)
	}
	return nil
}

type commentParams struct {
	Message string `json:"message"`
}

type labelsParams struct {
	Labels []string `json:"labels"`
}

type issueParams struct {
	Issue string `json:"issue"`
}

type openPullRequestParams struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body"`
}

type commitParams struct {
	CommitID string `json:"commit_id"`
}

type labelTransitionParams struct {
	CommitID       string   `json:"commit_id"`
	LabelsToAdd    []string `json:"labels_to_add"`
	LabelsToDelete []string `json:"labels_to_delete"`
}

type dismissReviewParams struct {
	ReviewID int64  `json:"review_id"`
	Message  string `json:"message"`
}

type dismissReviewsParams struct {
	Message string `json:"message"`
}

// registry is the explicit command table. Lookup fails closed: a name not
// listed here is an UnknownCommandError carrying this listing.
var registry = []Operation{
	{
		Name:    "comment",
		Summary: "Post a comment on the pull request given by --pr.",
		Detail:  "Extras: message.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p commentParams
			if err := decodeExtras("comment", extras, &p); err != nil {
				return nil, err
			}
			number, err := env.requirePR()
			if err != nil {
				return nil, err
			}
			return env.Client.AddComment(ctx, number, p.Message)
		},
	},
	{
		Name:    "add_labels",
		Summary: "Attach labels to the pull request given by --pr.",
		Detail:  "Extras: labels.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p labelsParams
			if err := decodeExtras("add_labels", extras, &p); err != nil {
				return nil, err
			}
			number, err := env.requirePR()
			if err != nil {
				return nil, err
			}
			return env.Client.AddLabels(ctx, number, p.Labels)
		},
	},
	{
		Name:    "remove_labels",
		Summary: "Detach labels from the pull request given by --pr.",
		Detail:  "Extras: labels.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p labelsParams
			if err := decodeExtras("remove_labels", extras, &p); err != nil {
				return nil, err
			}
			number, err := env.requirePR()
			if err != nil {
				return nil, err
			}
			for _, label := range p.Labels {
				if err := env.Client.RemoveLabel(ctx, number, label); err != nil {
					return nil, err
				}
			}
			return p.Labels, nil
		},
	},
	{
		Name:    "close_issue",
		Summary: "Close the given issue.",
		Detail:  "Extras: issue.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p issueParams
			if err := decodeExtras("close_issue", extras, &p); err != nil {
				return nil, err
			}
			if p.Issue == "" {
				return nil, errors.NewConfigError("close_issue requires an issue number in extras")
			}
			return env.Client.CloseIssue(ctx, p.Issue)
		},
	},
	{
		Name:    "open_pull_request",
		Summary: "Open a pull request from head to base.",
		Detail:  "Extras: title, head, base, body (optional).",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p openPullRequestParams
			if err := decodeExtras("open_pull_request", extras, &p); err != nil {
				return nil, err
			}
			return env.Client.CreatePullRequest(ctx, githubapi.NewPullRequest{
				Title: p.Title,
				Head:  p.Head,
				Base:  p.Base,
				Body:  p.Body,
			})
		},
	},
	{
		Name:    "target_branch",
		Summary: "Print the base branch of the pull request given by --pr.",
		Detail:  "Extras: none.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p struct{}
			if err := decodeExtras("target_branch", extras, &p); err != nil {
				return nil, err
			}
			return TargetBranch(ctx, env)
		},
	},
	{
		Name:    "list_reviews",
		Summary: "List the reviews on the pull request given by --pr.",
		Detail:  "Extras: none.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p struct{}
			if err := decodeExtras("list_reviews", extras, &p); err != nil {
				return nil, err
			}
			number, err := env.requirePR()
			if err != nil {
				return nil, err
			}
			return env.Client.ListReviews(ctx, number)
		},
	},
	{
		Name:    "dismiss_review",
		Summary: "Dismiss one review on the pull request given by --pr.",
		Detail:  "Extras: review_id, message.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p dismissReviewParams
			if err := decodeExtras("dismiss_review", extras, &p); err != nil {
				return nil, err
			}
			number, err := env.requirePR()
			if err != nil {
				return nil, err
			}
			return env.Client.DismissReview(ctx, number, p.ReviewID, p.Message)
		},
	},
	{
		Name:    "dismiss_reviews",
		Summary: "Dismiss every active review on the pull request given by --pr.",
		Detail:  "Extras: message.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p dismissReviewsParams
			if err := decodeExtras("dismiss_reviews", extras, &p); err != nil {
				return nil, err
			}
			return DismissReviews(ctx, env, p.Message)
		},
	},
	{
		Name:    "commit_message",
		Summary: "Print the message of a commit.",
		Detail:  "Extras: commit_id.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p commitParams
			if err := decodeExtras("commit_message", extras, &p); err != nil {
				return nil, err
			}
			return CommitMessage(ctx, env, p.CommitID)
		},
	},
	{
		Name:    "list_commits",
		Summary: "List the commit messages of the pull request given by --pr.",
		Detail:  "Extras: none. A single page of up to 99 commits.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p struct{}
			if err := decodeExtras("list_commits", extras, &p); err != nil {
				return nil, err
			}
			return CommitMessages(ctx, env)
		},
	},
	{
		Name:    "pull_request_number",
		Summary: "Print the pull request referenced by a commit message.",
		Detail:  "Extras: commit_id. Prints nothing for a non-standard commit.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p commitParams
			if err := decodeExtras("pull_request_number", extras, &p); err != nil {
				return nil, err
			}
			return PullRequestFromCommit(ctx, env, p.CommitID)
		},
	},
	{
		Name:    "deploy_issue_number",
		Summary: "Print the number of today's deploy tracking issue.",
		Detail:  "Extras: none. Prints nothing when no deploy issue exists today.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p struct{}
			if err := decodeExtras("deploy_issue_number", extras, &p); err != nil {
				return nil, err
			}
			return DeployIssueNumber(ctx, env)
		},
	},
	{
		Name:    "deploy_pull_requests",
		Summary: "List today's deploy pull requests ordered by merge time.",
		Detail:  "Extras: none. Collects #id mentions from the deploy issue and its comments.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p struct{}
			if err := decodeExtras("deploy_pull_requests", extras, &p); err != nil {
				return nil, err
			}
			return DeployPullRequests(ctx, env)
		},
	},
	{
		Name:    "close_deploy_issue",
		Summary: "Close today's deploy tracking issue.",
		Detail:  "Extras: none. Does nothing when no deploy issue exists today.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p struct{}
			if err := decodeExtras("close_deploy_issue", extras, &p); err != nil {
				return nil, err
			}
			return CloseDeployIssue(ctx, env)
		},
	},
	{
		Name:    "label_merged_pull_request",
		Summary: "Label the pull request merged by a commit.",
		Detail:  "Extras: commit_id, labels_to_add, labels_to_delete.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p labelTransitionParams
			if err := decodeExtras("label_merged_pull_request", extras, &p); err != nil {
				return nil, err
			}
			return LabelMergedPullRequest(ctx, env, p.CommitID, p.LabelsToAdd, p.LabelsToDelete)
		},
	},
	{
		Name:    "label_commit_pull_requests",
		Summary: "Label every pull request referenced by a PR's commit messages.",
		Detail:  "Extras: commit_id (optional, resolves the PR), labels_to_add, labels_to_delete.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p labelTransitionParams
			if err := decodeExtras("label_commit_pull_requests", extras, &p); err != nil {
				return nil, err
			}
			return LabelCommitPullRequests(ctx, env, p.CommitID, p.LabelsToAdd, p.LabelsToDelete)
		},
	},
	{
		Name:    "deleted_files",
		Summary: "List the files a commit deleted, renames by their old path.",
		Detail:  "Extras: commit_id.",
		Run: func(ctx context.Context, env *Env, extras json.RawMessage) (interface{}, error) {
			var p commitParams
			if err := decodeExtras("deleted_files", extras, &p); err != nil {
				return nil, err
			}
			return DeletedFiles(ctx, env, p.CommitID)
		},
	},
}

// Registry returns the command table in its declared order.
func Registry() []Operation {
	return registry
}

// Usage renders the registry as an indented name-plus-description listing.
func Usage() string {
	var b strings.Builder
	for _, op := range registry {
		fmt.Fprintf(&b, "  %s\n    %s\n    %s\n", op.Name, op.Summary, op.Detail)
	}
	return b.String()
}

// Lookup finds the operation registered under name, failing closed with an
// UnknownCommandError that carries the registry listing.
func Lookup(name string) (*Operation, error) {
	for i := range registry {
		if registry[i].Name == name {
			return &registry[i], nil
		}
	}
	return nil, errors.NewUnknownCommandError(name, Usage())
}

// Run dispatches one named operation.
func Run(ctx context.Context, env *Env, name string, extras json.RawMessage) (interface{}, error) {
	op, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return op.Run(ctx, env, extras)
}
