package notify

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// DefaultStatusContext is the default context name for commit statuses.
const DefaultStatusContext = "buildkeep/artifacts"

// GitHubStatusNotifier reports archive events as commit statuses on GitHub.
type GitHubStatusNotifier struct {
	client  *github.Client
	owner   string
	repo    string
	context string
}

// NewGitHubStatusNotifier creates a GitHub commit status notifier.
// token is a personal access token or GitHub App token; owner and repo
// identify the repository.
func NewGitHubStatusNotifier(token, owner, repo string) (*GitHubStatusNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &GitHubStatusNotifier{
		client:  github.NewClient(tc),
		owner:   owner,
		repo:    repo,
		context: DefaultStatusContext,
	}, nil
}

// WithContext sets the status context name.
func (n *GitHubStatusNotifier) WithContext(name string) *GitHubStatusNotifier {
	n.context = name
	return n
}

// Notify implements Notifier. Events without a commit SHA are skipped:
// there is nothing to attach the status to.
func (n *GitHubStatusNotifier) Notify(ctx context.Context, event Event) error {
	if event.Commit == "" {
		return nil
	}

	state := "success"
	if event.Severity == SeverityError {
		state = "failure"
	}

	status := &github.RepoStatus{
		State:       github.String(state),
		Context:     github.String(n.context),
		Description: github.String(truncate(event.Message, 140)),
	}

	_, _, err := n.client.Repositories.CreateStatus(ctx, n.owner, n.repo, event.Commit, status)
	if err != nil {
		return fmt.Errorf("create commit status: %w", err)
	}
	return nil
}

// truncate shortens s to at most n bytes; GitHub rejects long descriptions.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
