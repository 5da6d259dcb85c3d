package githubapi

// Models mirror the subset of the GitHub REST API response shapes the
// operations read. Identifiers derived from commit-message parsing are kept
// as strings end to end, since the parser is permissive about their content.

// Issue represents an issue (or a pull request surfaced through the issues
// endpoint, which reports the same metadata).
type Issue struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	State    string `json:"state"`
	ClosedAt string `json:"closed_at"` // RFC 3339; empty while the issue is open
}

// Comment represents a comment on an issue or pull request.
type Comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

// Ref is a branch reference on a pull request.
type Ref struct {
	Ref string `json:"ref"`
}

// PullRequest represents a pull request.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Base   Ref    `json:"base"`
	Head   Ref    `json:"head"`
	URL    string `json:"html_url"`
}

// NewPullRequest is the request body for opening a pull request.
type NewPullRequest struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body,omitempty"`
}

// Commit represents a commit, including the file-change list returned by
// the single-commit endpoint.
type Commit struct {
	SHA    string       `json:"sha"`
	Commit CommitDetail `json:"commit"`
	Files  []CommitFile `json:"files"`
}

// CommitDetail holds the git-level commit data.
type CommitDetail struct {
	Message string `json:"message"`
}

// CommitFile is one entry of a commit's file-change list.
type CommitFile struct {
	Filename         string `json:"filename"`
	Status           string `json:"status"`
	PreviousFilename string `json:"previous_filename,omitempty"`
}

// Review represents a pull request review.
type Review struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

// Label represents a label attached to an issue or pull request.
type Label struct {
	Name string `json:"name"`
}
