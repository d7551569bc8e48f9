package notify

import (
	"context"
	"fmt"

	"github.com/xanzy/go-gitlab"
)

// GitLabStatusNotifier reports archive events as commit statuses on GitLab.
type GitLabStatusNotifier struct {
	client  *gitlab.Client
	project string
	name    string
}

// NewGitLabStatusNotifier creates a GitLab commit status notifier.
// project is the numeric ID or "namespace/project" path; baseURL is the
// GitLab instance URL (empty for gitlab.com).
func NewGitLabStatusNotifier(token, project, baseURL string) (*GitLabStatusNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("GitLab token is required")
	}
	if project == "" {
		return nil, fmt.Errorf("project is required")
	}

	var client *gitlab.Client
	var err error
	if baseURL != "" {
		client, err = gitlab.NewClient(token, gitlab.WithBaseURL(baseURL))
	} else {
		client, err = gitlab.NewClient(token)
	}
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabStatusNotifier{
		client:  client,
		project: project,
		name:    DefaultStatusContext,
	}, nil
}

// WithName sets the status name.
func (n *GitLabStatusNotifier) WithName(name string) *GitLabStatusNotifier {
	n.name = name
	return n
}

// Notify implements Notifier. Events without a commit SHA are skipped.
func (n *GitLabStatusNotifier) Notify(ctx context.Context, event Event) error {
	if event.Commit == "" {
		return nil
	}

	state := gitlab.Success
	if event.Severity == SeverityError {
		state = gitlab.Failed
	}

	opts := &gitlab.SetCommitStatusOptions{
		State:       state,
		Name:        gitlab.Ptr(n.name),
		Description: gitlab.Ptr(truncate(event.Message, 140)),
	}

	_, _, err := n.client.Commits.SetCommitStatus(n.project, event.Commit, opts, gitlab.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("set commit status: %w", err)
	}
	return nil
}
