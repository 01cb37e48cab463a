package chain

import "github.com/ib-77/lazychain/pkg/lazy"

// Then attaches fn, called with the previous result as a single value. For a
// Chain[lazy.Unit] or a Chain of a tuple that value is the Unit or the tuple
// itself; use After* or ThenSpread* to apply the spreading rule to them.
func Then[T, R any](c Chain[T], fn func(T) R) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(fn))
}

// Then1 attaches fn, called with the previous result followed by b.
func Then1[T, B, R any](c Chain[T], fn func(T, B) R, b B) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Pass1(fn, b)))
}

func Then2[T, B1, B2, R any](c Chain[T], fn func(T, B1, B2) R, b1 B1, b2 B2) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Pass2(fn, b1, b2)))
}

// ThenTry attaches a fallible fn. A non-nil error ends the run.
func ThenTry[T, R any](c Chain[T], fn func(T) (R, error)) Chain[R] {
	return extend(c, lazy.FuncName(fn), fn)
}

func ThenTry1[T, B, R any](c Chain[T], fn func(T, B) (R, error), b B) Chain[R] {
	return extend(c, lazy.FuncName(fn), func(t T) (R, error) {
		return fn(t, b)
	})
}

// ThenDo attaches fn as a stage with no result.
func ThenDo[T any](c Chain[T], fn func(T)) Chain[lazy.Unit] {
	return extend(c, lazy.FuncName(fn), func(t T) (lazy.Unit, error) {
		fn(t)
		return lazy.Unit{}, nil
	})
}

// After attaches fn to a chain whose last stage returned nothing.
func After[R any](c Chain[lazy.Unit], fn func() R) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Drop(fn)))
}

func After1[B, R any](c Chain[lazy.Unit], fn func(B) R, b B) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Drop1(fn, b)))
}

func After2[B1, B2, R any](c Chain[lazy.Unit], fn func(B1, B2) R, b1 B1, b2 B2) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Drop2(fn, b1, b2)))
}

func AfterTry[R any](c Chain[lazy.Unit], fn func() (R, error)) Chain[R] {
	return extend(c, lazy.FuncName(fn), func(lazy.Unit) (R, error) {
		return fn()
	})
}

// ThenSpread2 attaches fn, called with the two elements of the previous
// result.
func ThenSpread2[A, B, R any](c Chain[lazy.Tuple2[A, B]], fn func(A, B) R) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Spread2(fn)))
}

// ThenSpread2x1 attaches fn, called with the two elements of the previous
// result followed by x.
func ThenSpread2x1[A, B, X, R any](c Chain[lazy.Tuple2[A, B]], fn func(A, B, X) R, x X) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Spread2x1(fn, x)))
}

func ThenSpread2x2[A, B, X, Y, R any](c Chain[lazy.Tuple2[A, B]], fn func(A, B, X, Y) R, x X, y Y) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Spread2x2(fn, x, y)))
}

func ThenSpread3[A, B, C, R any](c Chain[lazy.Tuple3[A, B, C]], fn func(A, B, C) R) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Spread3(fn)))
}

func ThenSpread3x1[A, B, C, X, R any](c Chain[lazy.Tuple3[A, B, C]], fn func(A, B, C, X) R, x X) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Spread3x1(fn, x)))
}

func ThenSpread4[A, B, C, D, R any](c Chain[lazy.Tuple4[A, B, C, D]], fn func(A, B, C, D) R) Chain[R] {
	return extend(c, lazy.FuncName(fn), infallible(lazy.Spread4(fn)))
}
