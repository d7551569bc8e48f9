package buildkeep

import (
	"fmt"
	"time"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	"github.com/randalmurphal/buildkeep/notify"
)

// RetentionNode deletes artifacts of superseded past builds before the
// current build archives its own.
//
// Prerequisites: an Archiver in context; build history via WithHistory
// Updates: state.SweptBuilds
//
// The node is a no-op when the archiver has latest-only retention disabled
// or no history is present in the context. Deletion failures are logged to
// the listener and never fail the pipeline.
func RetentionNode(ctx flowgraph.Context, state BuildState) (BuildState, error) {
	archiver := MustArchiverFromContext(ctx)
	listener := GetListener(ctx)

	history := HistoryFromContext(ctx)
	if len(history) == 0 {
		return state, nil
	}

	state.SweptBuilds = archiver.sweep(history, listener)

	if state.SweptBuilds > 0 {
		if notifier := notify.NotifierFromContext(ctx); notifier != nil {
			event := notify.Event{
				Type:      notify.EventRetentionSwept,
				BuildID:   state.BuildID,
				Message:   fmt.Sprintf("deleted artifacts of %d superseded builds", state.SweptBuilds),
				Severity:  notify.SeverityInfo,
				Timestamp: time.Now(),
			}
			if err := notifier.Notify(ctx, event); err != nil {
				listener.Errorf("notification failed: %v", err)
			}
		}
	}
	return state, nil
}
