// Package dyn provides a deferred Chain over callables of any arity, checked
// by reflection once, when a stage is attached.
//
// New builds the root stage from a function and its bound arguments; Then
// attaches a function fed by the previous stage. The result shape of a stage is
// its list of results minus a trailing error:
// - no results (or a lazy.Unit): nothing is passed on
// - several results: all of them are spread, in order
// - a single lazy.Tuple2/3/4 value: its elements are spread, in order
// - any other single result: passed on as one value
//
// The next function must accept the spread values followed by its own bound
// arguments. When it cannot, New and Then return a *lazy.IncompatibleError and
// no Chain is built; Execute never discovers a shape problem.
//
// A trailing error result is the stage's failure signal: a non-nil error stops
// the run and is returned to the caller of Execute unchanged.
package dyn
