package ops

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/deployline/gh-pilot/internal/parse"
)

// DeployTitlePrefix is the title prefix that marks the daily deploy
// tracking issue; the current date in YYYY-MM-DD form follows it.
const DeployTitlePrefix = "Deploy Request: "

// PullRequestFromCommit fetches a commit and extracts the pull request id
// from its message. An empty result means a non-standard commit, not an
// error; callers perform no further action on it.
func PullRequestFromCommit(ctx context.Context, env *Env, commitID string) (string, error) {
	message, err := CommitMessage(ctx, env, commitID)
	if err != nil {
		return "", err
	}
	return parse.CommitPullRequest(message), nil
}

// CommitMessage fetches a commit and returns its message.
func CommitMessage(ctx context.Context, env *Env, commitID string) (string, error) {
	commit, err := env.Client.GetCommit(ctx, commitID)
	if err != nil {
		return "", err
	}
	return commit.Commit.Message, nil
}

// CommitMessages returns the commit messages of the invocation's pull
// request, in commit order.
func CommitMessages(ctx context.Context, env *Env) ([]string, error) {
	number, err := env.requirePR()
	if err != nil {
		return nil, err
	}
	commits, err := env.Client.ListPullRequestCommits(ctx, number)
	if err != nil {
		return nil, err
	}
	messages := make([]string, len(commits))
	for i, commit := range commits {
		messages[i] = commit.Commit.Message
	}
	return messages, nil
}

// TargetBranch returns the base branch of the invocation's pull request.
func TargetBranch(ctx context.Context, env *Env) (string, error) {
	number, err := env.requirePR()
	if err != nil {
		return "", err
	}
	pr, err := env.Client.GetPullRequest(ctx, number)
	if err != nil {
		return "", err
	}
	return pr.Base.Ref, nil
}

// DeployIssueNumber finds today's deploy issue: the first open issue whose
// title starts with the deploy prefix followed by today's date. Returns the
// empty string when no such issue exists.
func DeployIssueNumber(ctx context.Context, env *Env) (string, error) {
	issues, err := env.Client.ListOpenIssues(ctx)
	if err != nil {
		return "", err
	}
	prefix := DeployTitlePrefix + env.now().Format("2006-01-02")
	for _, issue := range issues {
		if strings.HasPrefix(issue.Title, prefix) {
			return strconv.Itoa(issue.Number), nil
		}
	}
	env.Logger.Debug("no deploy issue found with title prefix %q", prefix)
	return "", nil
}

// DeployPullRequests collects every pull request mentioned on today's
// deploy issue (body first, then comments in the order the API returns
// them) and orders them by close time, ascending. Mentions whose referenced
// issue has no close timestamp sort last. The stable sort preserves mention
// order between equal timestamps. Returns nil when no deploy issue exists.
func DeployPullRequests(ctx context.Context, env *Env) ([]string, error) {
	number, err := DeployIssueNumber(ctx, env)
	if err != nil {
		return nil, err
	}
	if number == "" {
		return nil, nil
	}

	issue, err := env.Client.GetIssue(ctx, number)
	if err != nil {
		return nil, err
	}
	mentions := parse.PullRequestMentions(issue.Body)

	comments, err := env.Client.ListComments(ctx, number)
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		mentions = append(mentions, parse.PullRequestMentions(comment.Body)...)
	}

	type entry struct {
		id       string
		closedAt string
	}
	entries := make([]entry, 0, len(mentions))
	for _, mention := range mentions {
		id := strings.TrimPrefix(mention, "#")
		// The issues endpoint resolves pull request numbers too, which is
		// all the referenced metadata we need here.
		ref, err := env.Client.GetIssue(ctx, id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{id: id, closedAt: ref.ClosedAt})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].closedAt, entries[j].closedAt
		if a == "" {
			return false // unmerged references sort last
		}
		if b == "" {
			return true
		}
		return a < b
	})

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids, nil
}

// applyLabelTransition adds then deletes the configured label sets on one
// pull request. The two mutations are independent calls: a failure after
// the add leaves the added labels in place.
func applyLabelTransition(ctx context.Context, env *Env, number string, add, remove []string) error {
	if len(add) > 0 {
		if _, err := env.Client.AddLabels(ctx, number, add); err != nil {
			return err
		}
	}
	for _, label := range remove {
		if err := env.Client.RemoveLabel(ctx, number, label); err != nil {
			return err
		}
	}
	env.Logger.Info("labeled PR #%s: added %v, removed %v", number, add, remove)
	return nil
}

// LabelMergedPullRequest resolves the pull request merged by the given
// commit and applies the label transition to it. A commit without a pull
// request reference is a no-op, not a failure.
func LabelMergedPullRequest(ctx context.Context, env *Env, commitID string, add, remove []string) (string, error) {
	number, err := PullRequestFromCommit(ctx, env, commitID)
	if err != nil {
		return "", err
	}
	if number == "" {
		env.Logger.Info("commit %s carries no pull request reference, nothing to label", commitID)
		return "", nil
	}
	if err := applyLabelTransition(ctx, env, number, add, remove); err != nil {
		return "", err
	}
	return number, nil
}

// LabelCommitPullRequests scans the commits of a pull request and applies
// the label transition to every pull request referenced by a commit
// message. An explicit --pr number wins; only when none is supplied is the
// pull request resolved from commitID, and a non-standard commit is then a
// no-op. The first failed transition aborts the remaining ones; a CI retry
// re-runs the whole command and the mutations tolerate repetition.
func LabelCommitPullRequests(ctx context.Context, env *Env, commitID string, add, remove []string) ([]string, error) {
	number := env.PR
	if number == "" && commitID != "" {
		resolved, err := PullRequestFromCommit(ctx, env, commitID)
		if err != nil {
			return nil, err
		}
		number = resolved
	}
	if number == "" {
		return nil, nil
	}

	commits, err := env.Client.ListPullRequestCommits(ctx, number)
	if err != nil {
		return nil, err
	}

	var labeled []string
	for _, commit := range commits {
		ref := parse.CommitPullRequest(commit.Commit.Message)
		if ref == "" {
			continue
		}
		if err := applyLabelTransition(ctx, env, ref, add, remove); err != nil {
			return labeled, err
		}
		labeled = append(labeled, ref)
	}
	return labeled, nil
}

// DismissReviews dismisses every active review on the invocation's pull
// request with the given message. Already-dismissed reviews are skipped;
// the first failed dismissal aborts the rest.
func DismissReviews(ctx context.Context, env *Env, message string) ([]int64, error) {
	number, err := env.requirePR()
	if err != nil {
		return nil, err
	}
	reviews, err := env.Client.ListReviews(ctx, number)
	if err != nil {
		return nil, err
	}

	var dismissed []int64
	for _, review := range reviews {
		if review.State == "DISMISSED" {
			continue
		}
		if _, err := env.Client.DismissReview(ctx, number, review.ID, message); err != nil {
			return dismissed, err
		}
		dismissed = append(dismissed, review.ID)
	}
	return dismissed, nil
}

// CloseDeployIssue closes today's deploy issue if one exists. Returns the
// closed issue number, or the empty string when there was nothing to close.
func CloseDeployIssue(ctx context.Context, env *Env) (string, error) {
	number, err := DeployIssueNumber(ctx, env)
	if err != nil {
		return "", err
	}
	if number == "" {
		return "", nil
	}
	if _, err := env.Client.CloseIssue(ctx, number); err != nil {
		return "", err
	}
	return number, nil
}

// DeletedFiles lists the paths a commit removed: files with status
// "removed" by their current name, renames by their previous name. Other
// statuses are ignored; order follows the commit's file-change list.
func DeletedFiles(ctx context.Context, env *Env, commitID string) ([]string, error) {
	commit, err := env.Client.GetCommit(ctx, commitID)
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, file := range commit.Files {
		switch file.Status {
		case "removed":
			deleted = append(deleted, file.Filename)
		case "renamed":
			deleted = append(deleted, file.PreviousFilename)
		}
	}
	return deleted, nil
}
