package core

import (
	"context"
	"time"

	"github.com/go-logr/logr"
)

// RunStage runs fn as the stage described by info. Observers from ctx are
// notified before and after, and the logger from ctx receives a trace line at
// V(2). The error returned by fn is passed back unchanged. A panic in fn is
// not recovered and skips the after hooks.
func RunStage(ctx context.Context, info StageInfo, fn func() error) error {
	logger := logr.FromContextOrDiscard(ctx).WithName("lazychain")
	observers := GetObservers(ctx)

	for _, o := range observers {
		o.BeforeStage(ctx, info)
	}

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	logger.V(2).Info("Stage run", "stage", info.Name, "depth", info.Depth, "failed", err != nil)

	for _, o := range observers {
		o.AfterStage(ctx, info, err, elapsed)
	}
	return err
}
