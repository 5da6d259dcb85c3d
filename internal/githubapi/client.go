// Package githubapi wraps the go-gh REST client with the authentication,
// request shaping, and response models this tool needs. Every method issues
// exactly one HTTP call; a non-2xx response surfaces as go-gh's
// *api.HTTPError and propagates uncaught to the process boundary.
package githubapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/deployline/gh-pilot/internal/common"
	"github.com/deployline/gh-pilot/internal/config"
)

const defaultHost = "github.com"

// restDoer is the slice of the go-gh REST client the transport uses,
// kept as an interface so tests can inject function-field mocks.
type restDoer interface {
	DoWithContext(ctx context.Context, method string, path string, body io.Reader, response interface{}) error
}

// Client is the authenticated API client bound to one repository.
type Client struct {
	Owner string
	Repo  string

	rest   restDoer
	logger common.Logger
}

// New validates the credentials and builds a client for the given
// repository. Token auth uses go-gh's token header; basic auth sends an
// explicit Authorization header. When debug is on, go-gh dumps every raw
// request and response to stderr.
func New(settings config.Settings, logger common.Logger) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	opts := api.ClientOptions{
		Host:    defaultHost,
		Headers: map[string]string{},
	}
	if settings.Debug {
		opts.Log = os.Stderr
		opts.LogVerboseHTTP = true
	}

	creds := settings.Credentials
	if creds.Token != "" {
		opts.AuthToken = creds.Token
	} else {
		basic := basicCredential(creds.Username, creds.Password)
		// go-gh refuses to build a client without an auth token; the
		// explicit Authorization header takes precedence on the wire.
		opts.AuthToken = basic
		opts.Headers["Authorization"] = "Basic " + basic
	}

	rest, err := api.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{
		Owner:  settings.Org,
		Repo:   settings.Repo,
		rest:   rest,
		logger: logger,
	}, nil
}

// NewWithDoer builds a client around an existing doer. Used by tests.
func NewWithDoer(owner, repo string, doer restDoer, logger common.Logger) *Client {
	return &Client{Owner: owner, Repo: repo, rest: doer, logger: logger}
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(format, args...)
	}
}

// do performs one request against the API. body, when non-nil, is encoded
// as JSON; response, when non-nil, receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, response interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	c.debugLog("%s %s", method, path)
	if err := c.rest.DoWithContext(ctx, method, path, reader, response); err != nil {
		c.debugLog("%s %s failed: %v", method, path, err)
		return err
	}
	return nil
}

// repoPath builds a path under repos/{owner}/{repo}/.
func (c *Client) repoPath(format string, args ...interface{}) string {
	return fmt.Sprintf("repos/%s/%s/", c.Owner, c.Repo) + fmt.Sprintf(format, args...)
}

// basicCredential encodes a username/password pair for a basic
// Authorization header.
func basicCredential(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
