// Package lazy holds the vocabulary shared by the deferred chain packages:
// the Unit and Tuple result shapes, the spreading combinators and the error
// kinds returned when a chain cannot be built.
//
// A stage result is handed to the next stage according to its shape:
// - Unit: no leading arguments (the stage returned nothing)
// - Tuple2/Tuple3/Tuple4: each element becomes a leading argument, in order
// - anything else: the value itself is the only leading argument
//
// Bound arguments supplied when the next stage is attached always follow the
// leading arguments.
//
// See package chain for compile-time checked chains and package dyn for
// chains over arbitrary callables checked once at composition time.
package lazy
