package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/buildkeep"
	"github.com/randalmurphal/buildkeep/glob"
)

// EnvPrefix is prepended to key names for environment variable overrides.
// For example, the include pattern can be overridden with BUILDKEEP_INCLUDE.
const EnvPrefix = "BUILDKEEP_"

// Config is the structured configuration payload for the archiving step.
type Config struct {
	Archive buildkeep.ArchiveSpec `yaml:"archive"`
	Notify  Notify                `yaml:"notify,omitempty"`
}

// Notify configures where archive lifecycle events are delivered. Empty
// fields disable the corresponding notifier.
type Notify struct {
	// WebhookURL receives every event as a JSON POST.
	WebhookURL string `yaml:"webhook_url,omitempty"`

	// WebhookSecret, when set, signs each webhook delivery with a
	// short-lived bearer token. Must be at least 32 bytes.
	WebhookSecret string `yaml:"webhook_secret,omitempty"`

	// SlackWebhookURL posts events to a Slack incoming webhook.
	SlackWebhookURL string `yaml:"slack_webhook_url,omitempty"`

	// SlackChannel overrides the webhook's default channel.
	SlackChannel string `yaml:"slack_channel,omitempty"`

	GitHub GitHubStatus `yaml:"github,omitempty"`
	GitLab GitLabStatus `yaml:"gitlab,omitempty"`
}

// GitHubStatus configures commit status reporting on GitHub.
type GitHubStatus struct {
	Token string `yaml:"token,omitempty"`
	Owner string `yaml:"owner,omitempty"`
	Repo  string `yaml:"repo,omitempty"`

	// Context is the status context name. Defaults to "buildkeep/artifacts".
	Context string `yaml:"context,omitempty"`
}

// GitLabStatus configures commit status reporting on GitLab.
type GitLabStatus struct {
	Token string `yaml:"token,omitempty"`

	// Project is the numeric ID or "namespace/project" path.
	Project string `yaml:"project,omitempty"`

	// BaseURL is the GitLab instance URL (empty for gitlab.com).
	BaseURL string `yaml:"base_url,omitempty"`

	// Name is the status name. Defaults to "buildkeep/artifacts".
	Name string `yaml:"name,omitempty"`
}

// Load reads a YAML config file, applies environment overrides, and
// validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads YAML config from r, applies environment overrides, and
// validates the result.
func LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides archive settings from BUILDKEEP_* environment
// variables: INCLUDE, EXCLUDE, LATEST_ONLY, ALLOW_EMPTY.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvPrefix + "INCLUDE"); ok {
		c.Archive.Include = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "EXCLUDE"); ok {
		c.Archive.Exclude = v
	}
	for _, b := range []struct {
		key  string
		dest *bool
	}{
		{"LATEST_ONLY", &c.Archive.LatestOnly},
		{"ALLOW_EMPTY", &c.Archive.AllowEmpty},
	} {
		v, ok := os.LookupEnv(EnvPrefix + b.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s%s: %w", EnvPrefix, b.key, err)
		}
		*b.dest = parsed
	}
	return nil
}

// Validate checks the archive spec for configuration errors.
func (c *Config) Validate() error {
	if c.Archive.Include == "" {
		return buildkeep.ErrNoIncludes
	}
	if err := glob.CheckPatterns(c.Archive.Include); err != nil {
		return fmt.Errorf("include: %w", err)
	}
	if c.Archive.Exclude != "" {
		if err := glob.CheckPatterns(c.Archive.Exclude); err != nil {
			return fmt.Errorf("exclude: %w", err)
		}
	}
	if c.Notify.WebhookSecret != "" && len(c.Notify.WebhookSecret) < 32 {
		return fmt.Errorf("notify: webhook secret must be at least 32 bytes")
	}
	return nil
}

// ValidateIncludePattern gives interactive feedback on an include pattern,
// optionally checked against a workspace. It returns a human-readable
// diagnostic, or an empty string when the pattern looks fine. This is a
// configuration-time convenience; at archive time only the emptiness check
// is enforced.
func ValidateIncludePattern(workspaceHint, pattern string) (string, error) {
	if pattern == "" {
		return "include pattern must not be empty", nil
	}
	if err := glob.CheckPatterns(pattern); err != nil {
		return err.Error(), nil
	}
	if workspaceHint == "" {
		// No workspace to check against yet; syntax is all we can verify.
		return "", nil
	}
	return glob.ValidateMask(workspaceHint, pattern)
}
