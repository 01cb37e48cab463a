package lazy

import "reflect"

// The combinators below turn a callable with several leading parameters into a
// one-argument function over the previous stage's result. The x1/x2 suffix is
// the number of bound arguments appended after the spread values.

// Drop adapts fn to follow a stage that produced no value.
func Drop[R any](fn func() R) func(Unit) R {
	return func(Unit) R {
		return fn()
	}
}

func Drop1[B, R any](fn func(B) R, b B) func(Unit) R {
	return func(Unit) R {
		return fn(b)
	}
}

func Drop2[B1, B2, R any](fn func(B1, B2) R, b1 B1, b2 B2) func(Unit) R {
	return func(Unit) R {
		return fn(b1, b2)
	}
}

// Pass1 passes a scalar result as the only leading argument, followed by b.
func Pass1[T, B, R any](fn func(T, B) R, b B) func(T) R {
	return func(t T) R {
		return fn(t, b)
	}
}

func Pass2[T, B1, B2, R any](fn func(T, B1, B2) R, b1 B1, b2 B2) func(T) R {
	return func(t T) R {
		return fn(t, b1, b2)
	}
}

// Spread2 unpacks a Tuple2 into the two leading parameters of fn.
func Spread2[A, B, R any](fn func(A, B) R) func(Tuple2[A, B]) R {
	return func(t Tuple2[A, B]) R {
		return fn(t.V1, t.V2)
	}
}

func Spread2x1[A, B, C, R any](fn func(A, B, C) R, c C) func(Tuple2[A, B]) R {
	return func(t Tuple2[A, B]) R {
		return fn(t.V1, t.V2, c)
	}
}

func Spread2x2[A, B, C, D, R any](fn func(A, B, C, D) R, c C, d D) func(Tuple2[A, B]) R {
	return func(t Tuple2[A, B]) R {
		return fn(t.V1, t.V2, c, d)
	}
}

func Spread3[A, B, C, R any](fn func(A, B, C) R) func(Tuple3[A, B, C]) R {
	return func(t Tuple3[A, B, C]) R {
		return fn(t.V1, t.V2, t.V3)
	}
}

func Spread3x1[A, B, C, D, R any](fn func(A, B, C, D) R, d D) func(Tuple3[A, B, C]) R {
	return func(t Tuple3[A, B, C]) R {
		return fn(t.V1, t.V2, t.V3, d)
	}
}

func Spread4[A, B, C, D, R any](fn func(A, B, C, D) R) func(Tuple4[A, B, C, D]) R {
	return func(t Tuple4[A, B, C, D]) R {
		return fn(t.V1, t.V2, t.V3, t.V4)
	}
}

// LeadTypes is the static spreading rule: given the declared result types of
// a stage (trailing error already removed) it returns the types of the
// leading arguments the next stage receives.
func LeadTypes(out []reflect.Type) []reflect.Type {
	if len(out) == 1 {
		switch {
		case IsUnitType(out[0]):
			return nil
		case IsTupleType(out[0]):
			return TupleElems(out[0])
		}
	}
	return out
}

// LeadValues is the run time spreading rule. It decides on the declared
// types in out, so it always agrees with LeadTypes.
func LeadValues(out []reflect.Type, results []reflect.Value) []reflect.Value {
	if len(out) == 1 {
		switch {
		case IsUnitType(out[0]):
			return nil
		case IsTupleType(out[0]):
			fields := make([]reflect.Value, 0, results[0].NumField())
			for i := range results[0].NumField() {
				fields = append(fields, results[0].Field(i))
			}
			return fields
		}
	}
	return results
}

// SpreadValues applies the spreading rule to an untyped result, deciding on
// its dynamic type: a Tuple2/3/4 is unpacked, Unit contributes nothing and
// anything else (nil, pointers to tuples and structs embedding them included)
// is kept as is. extra is appended after the spread values.
func SpreadValues(result any, extra ...any) []any {
	var lead []any
	if result == nil {
		lead = []any{nil}
	} else {
		v := reflect.ValueOf(result)
		for _, l := range LeadValues([]reflect.Type{v.Type()}, []reflect.Value{v}) {
			lead = append(lead, l.Interface())
		}
	}

	out := make([]any, 0, len(lead)+len(extra))
	out = append(out, lead...)
	return append(out, extra...)
}
