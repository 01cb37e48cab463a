package chain

import (
	"context"

	"github.com/ib-77/lazychain/pkg/lazy"
	"github.com/ib-77/lazychain/pkg/lazy/core"
)

// Chain is a deferred computation producing T when executed.
type Chain[T any] struct {
	s *stage[T]
}

type node interface {
	stageInfo() core.StageInfo
	parentNode() node
}

type stage[T any] struct {
	info   core.StageInfo
	parent node
	exec   func(ctx context.Context, info core.StageInfo) (T, error)
}

func (s *stage[T]) stageInfo() core.StageInfo { return s.info }

func (s *stage[T]) parentNode() node { return s.parent }

func (s *stage[T]) run(ctx context.Context) (T, error) {
	if s == nil {
		var zero T
		return zero, lazy.ErrEmptyChain
	}
	return s.exec(ctx, s.info)
}

func root[R any](name string, step func() (R, error)) Chain[R] {
	return Chain[R]{s: &stage[R]{
		info: core.NewStageInfo(name, 0),
		exec: func(ctx context.Context, info core.StageInfo) (R, error) {
			var out R
			err := core.RunStage(ctx, info, func() error {
				var e error
				out, e = step()
				return e
			})
			return out, err
		},
	}}
}

func extend[T, R any](c Chain[T], name string, step func(T) (R, error)) Chain[R] {
	prev := c.s
	depth := 0
	var parent node
	if prev != nil {
		depth = prev.info.Depth + 1
		parent = prev
	}

	return Chain[R]{s: &stage[R]{
		info:   core.NewStageInfo(name, depth),
		parent: parent,
		exec: func(ctx context.Context, info core.StageInfo) (R, error) {
			var out R
			in, err := prev.run(ctx)
			if err != nil {
				return out, err
			}
			err = core.RunStage(ctx, info, func() error {
				var e error
				out, e = step(in)
				return e
			})
			return out, err
		},
	}}
}

func infallible[T, R any](fn func(T) R) func(T) (R, error) {
	return func(t T) (R, error) {
		return fn(t), nil
	}
}

// Execute runs every stage, root first, and returns the last stage's result.
// The first error returned by a stage ends the run and is returned as is.
func (c Chain[T]) Execute() (T, error) {
	return c.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a context carrying a logr.Logger and
// observers (see core.WithObserver). The context is not checked for
// cancellation.
func (c Chain[T]) ExecuteContext(ctx context.Context) (T, error) {
	return c.s.run(ctx)
}

func (c Chain[T]) IsZero() bool {
	return c.s == nil
}

func (c Chain[T]) Name() string {
	if c.s == nil {
		return ""
	}
	return c.s.info.Name
}

func (c Chain[T]) Depth() int {
	if c.s == nil {
		return -1
	}
	return c.s.info.Depth
}

func (c Chain[T]) Info() core.StageInfo {
	if c.s == nil {
		return core.StageInfo{Depth: -1}
	}
	return c.s.info
}

// Stages lists the stages that Execute runs, root first.
func (c Chain[T]) Stages() []core.StageInfo {
	if c.s == nil {
		return nil
	}

	var infos []core.StageInfo
	for n := node(c.s); n != nil; n = n.parentNode() {
		infos = append(infos, n.stageInfo())
	}
	for i, j := 0, len(infos)-1; i < j; i, j = i+1, j-1 {
		infos[i], infos[j] = infos[j], infos[i]
	}
	return infos
}

// Named returns a chain running the same stages whose last stage is reported
// under name. c itself is unchanged.
func (c Chain[T]) Named(name string) Chain[T] {
	if c.s == nil {
		return c
	}
	return Chain[T]{s: &stage[T]{
		info:   c.s.info.Renamed(name),
		parent: c.s.parent,
		exec:   c.s.exec,
	}}
}
