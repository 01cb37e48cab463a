package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	tag    string
	events *[]string
}

func (r recorder) BeforeStage(_ context.Context, info StageInfo) {
	*r.events = append(*r.events, r.tag+":before:"+info.Name)
}

func (r recorder) AfterStage(_ context.Context, info StageInfo, err error, _ time.Duration) {
	status := "ok"
	if err != nil {
		status = err.Error()
	}
	*r.events = append(*r.events, r.tag+":after:"+info.Name+":"+status)
}

func TestRunStage_NotifiesObserversInOrder(t *testing.T) {
	t.Parallel()

	var events []string
	ctx := WithObserver(WithObserver(context.Background(), recorder{"first", &events}), recorder{"second", &events})

	err := RunStage(ctx, NewStageInfo("load", 0), func() error {
		events = append(events, "run")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"first:before:load",
		"second:before:load",
		"run",
		"first:after:load:ok",
		"second:after:load:ok",
	}, events)
}

func TestRunStage_ReturnsErrorUnchanged(t *testing.T) {
	t.Parallel()

	var events []string
	boom := errors.New("boom")
	ctx := WithObserver(context.Background(), recorder{"obs", &events})

	err := RunStage(ctx, NewStageInfo("fail", 1), func() error { return boom })

	assert.Same(t, boom, err)
	assert.Equal(t, []string{"obs:before:fail", "obs:after:fail:boom"}, events)
}

func TestRunStage_WithoutOptions(t *testing.T) {
	t.Parallel()

	ran := false
	err := RunStage(context.Background(), NewStageInfo("plain", 0), func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.Empty(t, GetObservers(context.Background()))
}

func TestWithObserver_DoesNotAlterParentContext(t *testing.T) {
	t.Parallel()

	var events []string
	parent := WithObserver(context.Background(), recorder{"a", &events})
	_ = WithObserver(parent, recorder{"b", &events})
	_ = WithObserver(parent, recorder{"c", &events})

	assert.Len(t, GetObservers(parent), 1)
}

func TestLogObserver(t *testing.T) {
	t.Parallel()

	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})

	ctx := WithObserver(context.Background(), LogObserver(logger.WithName("test")))
	info := NewStageInfo("sum", 2)

	require.NoError(t, RunStage(ctx, info, func() error { return nil }))
	require.Error(t, RunStage(ctx, info, func() error { return errors.New("broken") }))

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"msg"="Stage started"`)
	assert.Contains(t, lines[0], `"stage"="sum"`)
	assert.Contains(t, lines[0], `"depth"=2`)
	assert.Contains(t, lines[1], `"msg"="Stage finished"`)
	assert.Contains(t, lines[3], `"msg"="Stage failed"`)
	assert.Contains(t, lines[3], `"error"="broken"`)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "test "), l)
	}
}

func TestRunStage_TracesThroughContextLogger(t *testing.T) {
	t.Parallel()

	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 2})

	ctx := logr.NewContext(context.Background(), logger)
	require.NoError(t, RunStage(ctx, NewStageInfo("traced", 0), func() error { return nil }))

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "lazychain")
	assert.Contains(t, lines[0], `"msg"="Stage run"`)
	assert.Contains(t, lines[0], `"failed"=false`)
}

func TestStageInfo_Renamed(t *testing.T) {
	t.Parallel()

	info := NewStageInfo("a", 3)
	renamed := info.Renamed("b")

	assert.NotEqual(t, info.ID, renamed.ID)
	assert.Equal(t, "b", renamed.Name)
	assert.Equal(t, 3, renamed.Depth)
	assert.Equal(t, "a", info.Name)
}
