package core

import (
	"context"
	"time"

	"github.com/go-logr/logr"
)

type OptionKey string

const ObserverOptionKey OptionKey = "observer_options"

// Observer is notified around every stage run. Hooks run on the caller's
// goroutine, between stages.
type Observer interface {
	BeforeStage(ctx context.Context, info StageInfo)
	AfterStage(ctx context.Context, info StageInfo, err error, elapsed time.Duration)
}

type ObserverOptions struct {
	Observers []Observer
}

// WithObserver adds o to the observers notified by executions using ctx.
// Observers already present in ctx are kept and notified first.
func WithObserver(ctx context.Context, o Observer) context.Context {
	prev := GetObservers(ctx)
	observers := make([]Observer, 0, len(prev)+1)
	observers = append(observers, prev...)
	observers = append(observers, o)
	return context.WithValue(ctx, ObserverOptionKey, ObserverOptions{Observers: observers})
}

func GetObservers(ctx context.Context) []Observer {
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	if ok {
		return options.Observers
	}
	return nil
}

type logObserver struct {
	logger logr.Logger
}

// LogObserver reports stage starts and successful ends at V(1) and failed
// stages at error level.
func LogObserver(logger logr.Logger) Observer {
	return logObserver{logger: logger}
}

func (o logObserver) BeforeStage(_ context.Context, info StageInfo) {
	o.logger.V(1).Info("Stage started", "stage", info.Name, "depth", info.Depth, "id", info.ID.String())
}

func (o logObserver) AfterStage(_ context.Context, info StageInfo, err error, elapsed time.Duration) {
	if err != nil {
		o.logger.Error(err, "Stage failed", "stage", info.Name, "depth", info.Depth,
			"id", info.ID.String(), "elapsed", elapsed)
		return
	}
	o.logger.V(1).Info("Stage finished", "stage", info.Name, "depth", info.Depth,
		"id", info.ID.String(), "elapsed", elapsed)
}
