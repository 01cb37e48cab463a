// Package chain provides a statically typed deferred Chain[T].
//
// A Chain describes work without doing it. New* and Do* build a root stage from
// a callable and its bound arguments; Then*, After* and ThenSpread* attach a new
// stage fed by the previous stage's result; Execute runs every stage, root
// first, on the calling goroutine and returns the last result.
//
// Key operations:
// - New/New1/New2/New3, NewTry/NewTry1, Do/Do1: root stages
// - Then/Then1/Then2, ThenTry/ThenTry1: a scalar result as the leading argument
// - ThenSpread2/2x1/2x2/3/3x1/4: a tuple result spread over the leading arguments
// - After/After1/After2, AfterTry: follow a stage that returned nothing
// - ThenDo: finish with a stage that returns nothing
// - Tap: run a side effect and pass the value on
// - Execute/ExecuteContext: run the whole chain, nothing is cached
// - Finally: execute and collapse the outcome into one value
//
// Chains are handles over immutable stages. Copying a Chain and extending both
// copies makes the two chains share every earlier stage; since nothing is
// memoized, each Execute still runs the shared stages again. Bound arguments
// are captured by assignment when the stage is built, so pointers, maps and
// slices keep referring to the caller's data.
//
// A callable that does not fit the spread result plus its bound arguments is
// rejected by the compiler. Then* cannot tell a tuple or lazy.Unit apart from
// any other value, so it hands them over whole; chains ending in a tuple are
// spread with ThenSpread*, chains ending in lazy.Unit are continued with After*.
package chain
