package record

// Lens reads and replaces one field of a record held by value.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// NewLens pairs a getter with a copy-on-write setter.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// FieldOf names a lens built from get and set.
func FieldOf[S, A any](name string, get func(S) A, set func(S, A) S) Field[S, A] {
	return Field[S, A]{Name: name, Lens: NewLens(get, set)}
}
