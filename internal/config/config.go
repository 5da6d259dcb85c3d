// Package config resolves the per-invocation settings: repository
// coordinates, credentials, and the free-form extras payload. Values are
// applied in precedence order (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (GITHUB_TOKEN, GH_PILOT_ORG, GH_PILOT_REPO)
//  3. Optional config file (.gh-pilot.yaml in the working directory, or
//     ~/.config/gh-pilot/config.yaml)
//
// Credential validation happens here, before any client is constructed,
// so a bad invocation never reaches the network.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deployline/gh-pilot/internal/errors"
)

const (
	// APITimeout bounds a full operation, including every constituent
	// call of a composite workflow.
	APITimeout = 5 * time.Minute

	// Config file names searched in order.
	localConfigYAML = ".gh-pilot.yaml"
	localConfigYML  = ".gh-pilot.yml"
)

// Credentials holds the authentication material for one invocation.
// Exactly one mode must be supplied: a token, or a username/password pair.
type Credentials struct {
	Token    string
	Username string
	Password string
}

// Validate enforces the single-auth-mode invariant. Supplying both a token
// and a username is ambiguous and rejected; supplying neither is rejected.
func (c Credentials) Validate() error {
	if c.Token != "" && c.Username != "" {
		return errors.NewConfigError("ambiguous credentials: supply a token or a username/password pair, not both")
	}
	if c.Token == "" && (c.Username == "" || c.Password == "") {
		return errors.NewConfigError("no credentials supplied")
	}
	return nil
}

// Settings is the fully resolved configuration for one invocation.
type Settings struct {
	Org         string
	Repo        string
	Debug       bool
	Credentials Credentials
}

// Validate checks that the settings are complete enough to build a client.
func (s Settings) Validate() error {
	if s.Org == "" || s.Repo == "" {
		return errors.NewConfigError("organization and repository are required")
	}
	return s.Credentials.Validate()
}

// FileConfig is the optional on-disk configuration. It only supplies
// defaults; flags and environment variables always win.
type FileConfig struct {
	Org  string `yaml:"org"`
	Repo string `yaml:"repo"`
}

// LoadFileConfig reads the first config file found in the standard
// locations. A missing file is not an error; an unreadable or malformed
// file is.
func LoadFileConfig() (*FileConfig, error) {
	home, _ := os.UserHomeDir()
	candidates := []string{
		localConfigYAML,
		localConfigYML,
	}
	if home != "" {
		candidates = append(candidates, filepath.Join(home, ".config", "gh-pilot", "config.yaml"))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.NewConfigError("failed to read config file %s: %v", path, err)
		}
		var cfg FileConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.NewConfigError("failed to parse config file %s: %v", path, err)
		}
		return &cfg, nil
	}
	return &FileConfig{}, nil
}

// Resolve applies the precedence order to produce the final settings.
// flags carries whatever the command line supplied; empty fields fall
// through to the environment and then to the file config.
func Resolve(flags Settings, file *FileConfig) Settings {
	resolved := flags

	if resolved.Credentials.Token == "" && resolved.Credentials.Username == "" {
		resolved.Credentials.Token = os.Getenv("GITHUB_TOKEN")
	}
	if resolved.Org == "" {
		resolved.Org = os.Getenv("GH_PILOT_ORG")
	}
	if resolved.Repo == "" {
		resolved.Repo = os.Getenv("GH_PILOT_REPO")
	}

	if file != nil {
		if resolved.Org == "" {
			resolved.Org = file.Org
		}
		if resolved.Repo == "" {
			resolved.Repo = file.Repo
		}
	}
	return resolved
}

// ParseExtras validates the free-form extras payload. The payload must be
// a well-formed JSON object; each operation then decodes it into its own
// typed parameter struct. An empty payload is equivalent to "{}".
func ParseExtras(raw string) (json.RawMessage, error) {
	if raw == "" {
		return json.RawMessage("{}"), nil
	}
	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &object); err != nil || object == nil {
		return nil, errors.NewConfigError("extras is not a valid JSON object: %q", raw)
	}
	return json.RawMessage(raw), nil
}
