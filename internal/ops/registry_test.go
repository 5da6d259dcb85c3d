package ops

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/deployline/gh-pilot/internal/errors"
	"github.com/deployline/gh-pilot/internal/githubapi"
)

func TestRegistryEntriesAreComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range Registry() {
		if op.Name == "" {
			t.Error("registry entry with empty name")
			continue
		}
		if seen[op.Name] {
			t.Errorf("duplicate registry entry %q", op.Name)
		}
		seen[op.Name] = true
		if op.Summary == "" || op.Detail == "" {
			t.Errorf("operation %q is missing its two-line description", op.Name)
		}
		if op.Run == nil {
			t.Errorf("operation %q has no handler", op.Name)
		}
	}
}

func TestRegistryCoversEveryCommand(t *testing.T) {
	want := []string{
		"comment", "add_labels", "remove_labels", "close_issue",
		"open_pull_request", "target_branch", "list_reviews",
		"dismiss_review", "dismiss_reviews", "pull_request_number",
		"deploy_issue_number", "deploy_pull_requests", "close_deploy_issue",
		"label_merged_pull_request", "label_commit_pull_requests",
		"deleted_files", "commit_message", "list_commits",
	}
	for _, name := range want {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) = %v, want registered operation", name, err)
		}
	}
	if got := len(Registry()); got != len(want) {
		t.Errorf("registry has %d entries, want %d", got, len(want))
	}
}

func TestLookupUnknownCommandFailsClosed(t *testing.T) {
	_, err := Lookup("frobnicate")
	if err == nil {
		t.Fatal("Lookup() of an unregistered name should fail")
	}
	if !errors.IsUnknownCommand(err) {
		t.Errorf("Lookup() returned %T, want *errors.UnknownCommandError", err)
	}
	if !strings.Contains(err.Error(), "deploy_pull_requests") {
		t.Errorf("Lookup() error should carry the registry listing, got %q", err.Error())
	}
}

func TestUsageListsEveryOperation(t *testing.T) {
	usage := Usage()
	for _, op := range Registry() {
		if !strings.Contains(usage, op.Name) {
			t.Errorf("Usage() missing operation %q", op.Name)
		}
		if !strings.Contains(usage, op.Summary) {
			t.Errorf("Usage() missing summary for %q", op.Name)
		}
	}
}

func TestRunDispatchesByName(t *testing.T) {
	client := &FakeClient{
		AddCommentFunc: func(ctx context.Context, number, message string) (githubapi.Comment, error) {
			if number != "12" || message != "ship it" {
				t.Errorf("AddComment(%q, %q), want (12, ship it)", number, message)
			}
			return githubapi.Comment{ID: 900, Body: message}, nil
		},
	}
	env := testEnv(client)
	env.PR = "12"

	result, err := Run(context.Background(), env, "comment", json.RawMessage(`{"message": "ship it"}`))
	if err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	comment, ok := result.(githubapi.Comment)
	if !ok || comment.ID != 900 {
		t.Errorf("Run() = %#v, want the posted comment", result)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, err := Run(context.Background(), testEnv(&FakeClient{}), "nope", nil)
	if !errors.IsUnknownCommand(err) {
		t.Errorf("Run() = %v, want UnknownCommandError", err)
	}
}

func TestExtrasUnknownKeysRejected(t *testing.T) {
	env := testEnv(&FakeClient{})
	env.PR = "12"

	_, err := Run(context.Background(), env, "comment", json.RawMessage(`{"message": "hi", "mesage": "typo"}`))
	if err == nil {
		t.Fatal("Run() should reject extras with unrecognized keys")
	}
	if !errors.IsConfigError(err) {
		t.Errorf("Run() returned %T, want *errors.ConfigError", err)
	}
}

func TestExtrasWrongTypeRejected(t *testing.T) {
	env := testEnv(&FakeClient{})
	env.PR = "12"

	_, err := Run(context.Background(), env, "add_labels", json.RawMessage(`{"labels": "not-a-list"}`))
	if !errors.IsConfigError(err) {
		t.Errorf("Run() = %v, want ConfigError for mistyped extras", err)
	}
}

func TestCommandsRequiringPRFailWithoutIt(t *testing.T) {
	for _, name := range []string{"comment", "add_labels", "remove_labels", "target_branch", "list_reviews", "dismiss_review", "dismiss_reviews", "list_commits"} {
		t.Run(name, func(t *testing.T) {
			// no client functions wired: the command must fail before any call
			_, err := Run(context.Background(), testEnv(&FakeClient{}), name, nil)
			if !errors.IsConfigError(err) {
				t.Errorf("Run(%q) without --pr = %v, want ConfigError", name, err)
			}
		})
	}
}

func TestCloseIssueRequiresIssueNumber(t *testing.T) {
	_, err := Run(context.Background(), testEnv(&FakeClient{}), "close_issue", json.RawMessage(`{}`))
	if !errors.IsConfigError(err) {
		t.Errorf("Run(close_issue) without issue = %v, want ConfigError", err)
	}
}

func TestOpenPullRequest(t *testing.T) {
	client := &FakeClient{
		CreatePullRequestFunc: func(ctx context.Context, input githubapi.NewPullRequest) (githubapi.PullRequest, error) {
			if input.Head != "staging" || input.Base != "production" {
				t.Errorf("CreatePullRequest input = %+v", input)
			}
			return githubapi.PullRequest{Number: 90}, nil
		},
	}

	extras := json.RawMessage(`{"title": "Release", "head": "staging", "base": "production"}`)
	result, err := Run(context.Background(), testEnv(client), "open_pull_request", extras)
	if err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if pr, ok := result.(githubapi.PullRequest); !ok || pr.Number != 90 {
		t.Errorf("Run() = %#v, want the created pull request", result)
	}
}

func TestRemoveLabelsIssuesOneDeletePerLabel(t *testing.T) {
	var removed []string
	client := &FakeClient{
		RemoveLabelFunc: func(ctx context.Context, number, label string) error {
			removed = append(removed, label)
			return nil
		},
	}
	env := testEnv(client)
	env.PR = "12"

	_, err := Run(context.Background(), env, "remove_labels", json.RawMessage(`{"labels": ["staged", "qa"]}`))
	if err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if len(removed) != 2 || removed[0] != "staged" || removed[1] != "qa" {
		t.Errorf("removed = %v, want one delete call per label in order", removed)
	}
}
