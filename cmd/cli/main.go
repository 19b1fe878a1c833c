// Command tilt-engine replays acceleration traces through the ball motion model
// (run) or lets you tilt a ball around the terminal (play).
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cxd309/tilt-engine/internal/observability"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		observability.GetLogger().Error("command failed", zap.Error(err))
		observability.Sync()
		stop()
		os.Exit(1)
	}
	observability.Sync()
}
