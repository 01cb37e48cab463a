package dyn

import (
	"context"
	"reflect"

	"github.com/ib-77/lazychain/pkg/lazy"
	"github.com/ib-77/lazychain/pkg/lazy/core"
)

// Chain is a deferred computation over reflectively checked stages. The zero
// Chain has no stages.
type Chain struct {
	s *stage
}

type stage struct {
	info   core.StageInfo
	parent *stage
	b      binding
}

// New builds a root chain calling fn with args. It fails with a
// *lazy.IncompatibleError when fn cannot be called with exactly args.
func New(fn any, args ...any) (Chain, error) {
	b, err := bind(0, fn, nil, args)
	if err != nil {
		return Chain{}, err
	}
	return Chain{s: &stage{
		info: core.NewStageInfo(lazy.FuncName(fn), 0),
		b:    b,
	}}, nil
}

// MustNew is like New but panics if the stage cannot be built.
func MustNew(fn any, args ...any) Chain {
	c, err := New(fn, args...)
	if err != nil {
		panic(err)
	}
	return c
}

// Then returns a new chain that runs c and then fn, called with the spread
// result of c followed by args. c is not modified.
func (c Chain) Then(fn any, args ...any) (Chain, error) {
	if c.s == nil {
		return Chain{}, lazy.ErrEmptyChain
	}

	depth := c.s.info.Depth + 1
	b, err := bind(depth, fn, lazy.LeadTypes(c.s.b.out), args)
	if err != nil {
		return Chain{}, err
	}
	return Chain{s: &stage{
		info:   core.NewStageInfo(lazy.FuncName(fn), depth),
		parent: c.s,
		b:      b,
	}}, nil
}

func (c Chain) MustThen(fn any, args ...any) Chain {
	next, err := c.Then(fn, args...)
	if err != nil {
		panic(err)
	}
	return next
}

// Execute runs every stage, root first, and returns the results of the last
// stage without its trailing error. Nothing is cached between calls.
func (c Chain) Execute() ([]any, error) {
	return c.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a context carrying a logr.Logger and
// observers. The context is not checked for cancellation.
func (c Chain) ExecuteContext(ctx context.Context) ([]any, error) {
	results, err := c.run(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]any, 0, len(results))
	for _, r := range results {
		values = append(values, r.Interface())
	}
	return values, nil
}

// Value executes the chain and returns nil for a stage without results, the
// value itself for a single result, and a []any for several results.
func (c Chain) Value() (any, error) {
	values, err := c.Execute()
	if err != nil {
		return nil, err
	}

	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return values[0], nil
	default:
		return values, nil
	}
}

func (c Chain) run(ctx context.Context) ([]reflect.Value, error) {
	if c.s == nil {
		return nil, lazy.ErrEmptyChain
	}

	var path []*stage
	for s := c.s; s != nil; s = s.parent {
		path = append(path, s)
	}

	var (
		results []reflect.Value
		lead    []reflect.Value
	)
	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		err := core.RunStage(ctx, s.info, func() error {
			var e error
			results, e = s.b.call(lead)
			return e
		})
		if err != nil {
			return nil, err
		}
		lead = lazy.LeadValues(s.b.out, results)
	}
	return results, nil
}

// Out returns the result types of the last stage, trailing error excluded.
func (c Chain) Out() []reflect.Type {
	if c.s == nil {
		return nil
	}
	return append([]reflect.Type(nil), c.s.b.out...)
}

func (c Chain) IsZero() bool {
	return c.s == nil
}

func (c Chain) Name() string {
	if c.s == nil {
		return ""
	}
	return c.s.info.Name
}

func (c Chain) Depth() int {
	if c.s == nil {
		return -1
	}
	return c.s.info.Depth
}

// Stages lists the stages that Execute runs, root first.
func (c Chain) Stages() []core.StageInfo {
	var infos []core.StageInfo
	for s := c.s; s != nil; s = s.parent {
		infos = append([]core.StageInfo{s.info}, infos...)
	}
	return infos
}

// Named returns a chain running the same stages whose last stage is reported
// under name.
func (c Chain) Named(name string) Chain {
	if c.s == nil {
		return c
	}
	return Chain{s: &stage{
		info:   c.s.info.Renamed(name),
		parent: c.s.parent,
		b:      c.s.b,
	}}
}
