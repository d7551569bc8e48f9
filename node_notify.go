package buildkeep

import (
	"fmt"
	"time"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	"github.com/randalmurphal/buildkeep/notify"
)

// NotifyNode reports the archive outcome through the Notifier in context.
//
// Prerequisites: ArchiveNode must have run
//
// The node is a no-op when no Notifier is injected. Delivery failures are
// logged to the listener and never fail the pipeline.
func NotifyNode(ctx flowgraph.Context, state BuildState) (BuildState, error) {
	notifier := notify.NotifierFromContext(ctx)
	if notifier == nil {
		return state, nil
	}

	event := archiveEvent(state)
	if err := notifier.Notify(ctx, event); err != nil {
		GetListener(ctx).Errorf("notification failed: %v", err)
	}
	return state, nil
}

// archiveEvent derives the notification event from the archive result.
func archiveEvent(state BuildState) notify.Event {
	event := notify.Event{
		BuildID:       state.BuildID,
		Outcome:       state.Outcome.String(),
		ArtifactCount: state.ArtifactCount,
		Commit:        state.Commit,
		Timestamp:     time.Now(),
	}

	switch {
	case state.ArtifactCount > 0:
		event.Type = notify.EventArtifactsArchived
		event.Severity = notify.SeverityInfo
		event.Message = fmt.Sprintf("archived %d artifacts for build %s", state.ArtifactCount, state.Name())
	case state.Outcome == Failure:
		event.Type = notify.EventArchiveFailed
		event.Severity = notify.SeverityError
		event.Message = fmt.Sprintf("no artifacts archived for build %s", state.Name())
	default:
		event.Type = notify.EventArtifactsMissing
		event.Severity = notify.SeverityWarning
		event.Message = fmt.Sprintf("build %s produced no artifacts", state.Name())
	}

	return event
}
