package buildkeep

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// =============================================================================
// Node Types
// =============================================================================

// NodeFunc is a function that processes build state and returns updated state.
// This signature is compatible with flowgraph's NodeFunc[BuildState].
type NodeFunc func(ctx context.Context, state BuildState) (BuildState, error)

// =============================================================================
// Node Wrappers
// =============================================================================

// WithRetry wraps a node with retry logic
func WithRetry(node NodeFunc, maxRetries int) NodeFunc {
	return func(ctx context.Context, state BuildState) (BuildState, error) {
		var lastErr error
		for i := 0; i < maxRetries; i++ {
			result, err := node(ctx, state)
			if err == nil {
				return result, nil
			}
			lastErr = err
		}
		return state, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
	}
}

// WithTiming wraps a node with timing metrics
func WithTiming(node NodeFunc) NodeFunc {
	return func(ctx context.Context, state BuildState) (BuildState, error) {
		start := time.Now()
		result, err := node(ctx, state)
		duration := time.Since(start)
		slog.Debug("node execution completed", "buildId", state.BuildID, "duration", duration)
		return result, err
	}
}
