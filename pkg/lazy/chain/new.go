package chain

import "github.com/ib-77/lazychain/pkg/lazy"

// New builds a root stage calling fn with no arguments.
func New[R any](fn func() R) Chain[R] {
	return root(lazy.FuncName(fn), func() (R, error) {
		return fn(), nil
	})
}

func New1[A, R any](fn func(A) R, a A) Chain[R] {
	return root(lazy.FuncName(fn), func() (R, error) {
		return fn(a), nil
	})
}

func New2[A, B, R any](fn func(A, B) R, a A, b B) Chain[R] {
	return root(lazy.FuncName(fn), func() (R, error) {
		return fn(a, b), nil
	})
}

func New3[A, B, C, R any](fn func(A, B, C) R, a A, b B, c C) Chain[R] {
	return root(lazy.FuncName(fn), func() (R, error) {
		return fn(a, b, c), nil
	})
}

// NewTry builds a root stage whose error, if any, ends the run.
func NewTry[R any](fn func() (R, error)) Chain[R] {
	return root(lazy.FuncName(fn), fn)
}

func NewTry1[A, R any](fn func(A) (R, error), a A) Chain[R] {
	return root(lazy.FuncName(fn), func() (R, error) {
		return fn(a)
	})
}

// Do builds a root stage with no result. The next stage gets no leading
// arguments.
func Do(fn func()) Chain[lazy.Unit] {
	return root(lazy.FuncName(fn), func() (lazy.Unit, error) {
		fn()
		return lazy.Unit{}, nil
	})
}

func Do1[A any](fn func(A), a A) Chain[lazy.Unit] {
	return root(lazy.FuncName(fn), func() (lazy.Unit, error) {
		fn(a)
		return lazy.Unit{}, nil
	})
}
