package chain

import (
	"context"

	"github.com/ib-77/lazychain/pkg/lazy"
)

// Tap attaches a side effect that receives the previous result and passes it
// on unchanged.
func Tap[T any](c Chain[T], fn func(T)) Chain[T] {
	return extend(c, lazy.FuncName(fn), func(t T) (T, error) {
		fn(t)
		return t, nil
	})
}

// Finally executes c and collapses the outcome into a single value using
// onSuccess or onError.
func Finally[T, U any](ctx context.Context, c Chain[T],
	onSuccess func(ctx context.Context, r T) U,
	onError func(ctx context.Context, err error) U) U {

	r, err := c.ExecuteContext(ctx)
	if err != nil {
		return onError(ctx, err)
	}
	return onSuccess(ctx, r)
}
