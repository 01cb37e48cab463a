package lazy

// Unit is the result of a stage whose callable returns nothing.
type Unit struct{}

// Tuple is implemented by Tuple2, Tuple3 and Tuple4 only. Their elements are
// spread into the leading parameters of the next stage; any other type,
// including a struct embedding one of them, is passed on whole.
type Tuple interface {
	// Len returns the number of elements
	Len() int
	// Values returns the elements in order
	Values() []any

	tuple()
}

type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

func T2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{V1: a, V2: b}
}

func T3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: a, V2: b, V3: c}
}

func T4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{V1: a, V2: b, V3: c, V4: d}
}

func (t Tuple2[A, B]) Len() int { return 2 }

func (t Tuple2[A, B]) Values() []any { return []any{t.V1, t.V2} }

func (t Tuple3[A, B, C]) Len() int { return 3 }

func (t Tuple3[A, B, C]) Values() []any { return []any{t.V1, t.V2, t.V3} }

func (t Tuple4[A, B, C, D]) Len() int { return 4 }

func (t Tuple4[A, B, C, D]) Values() []any { return []any{t.V1, t.V2, t.V3, t.V4} }

func (Tuple2[A, B]) tuple() {}

func (Tuple3[A, B, C]) tuple() {}

func (Tuple4[A, B, C, D]) tuple() {}
