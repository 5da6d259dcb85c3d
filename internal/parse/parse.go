// Package parse contains the pure text extraction helpers used by the
// composite operations: pulling a pull request reference out of a merge
// commit message, and collecting every #id mention in free-form text.
package parse

import "regexp"

// commitRefPattern matches the "(#<id>)" suffix GitHub appends to squash
// and merge commit subjects. The capture is deliberately permissive: it
// accepts any non-empty content after the '#', not just digits.
var commitRefPattern = regexp.MustCompile(`\(#(.+?)\)`)

// mentionPattern matches a #id token with a numeric id.
var mentionPattern = regexp.MustCompile(`#\d+`)

// CommitPullRequest extracts the pull request id from a commit message,
// e.g. "Fix login flow (#123)" yields "123". Only the first parenthesized
// reference is used, scanning left to right. Returns the empty string when
// the message carries no reference; callers treat that as a non-standard
// commit rather than an error.
func CommitPullRequest(message string) string {
	m := commitRefPattern.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return m[1]
}

// PullRequestMentions returns every "#<digits>" token in text in order of
// appearance, duplicates included. Returns nil when text has no mentions.
func PullRequestMentions(text string) []string {
	return mentionPattern.FindAllString(text, -1)
}
