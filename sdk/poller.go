package sdk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PollOptions configures PollUntilDone.
type PollOptions struct {
	// Interval is the time between observations. Zero or negative means the
	// default of 5 seconds.
	Interval time.Duration

	// Logger records each observed state. Default: zap.NewNop()
	Logger *zap.Logger
}

// terminalStates maps the provisioning states that end polling to whether
// they are a success.
var terminalStates = map[string]bool{
	"succeeded": true,
	"failed":    false,
	"canceled":  false,
	"cancelled": false,
}

// PollUntilDone calls get until it returns a terminal provisioning state.
//
// Operations never poll on their own; this helper is opt-in for callers that
// want to wait for a long-running PUT or DELETE to settle.
//
// Parameters:
//   - ctx: Context for cancellation
//   - get: Returns the current provisioning state of the resource
//   - opts: Interval and logger
//
// Returns:
//   - string: The terminal state observed
//   - error: ErrPollTerminalFailure for Failed/Canceled, or the error from get or ctx
func PollUntilDone(ctx context.Context, get func(ctx context.Context) (string, error), opts PollOptions) (string, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for polls := 1; ; polls++ {
		state, err := get(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to poll provisioning state: %w", err)
		}

		logger.Debug("Observed provisioning state",
			zap.String("state", state),
			zap.Int("poll", polls),
		)

		if success, terminal := terminalStates[strings.ToLower(state)]; terminal {
			if !success {
				return state, fmt.Errorf("%w: %s", ErrPollTerminalFailure, state)
			}
			logger.Info("Provisioning finished", zap.String("state", state), zap.Int("polls", polls))
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-ticker.C:
		}
	}
}
