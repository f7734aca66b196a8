package binding

// Ref is a value cell bound to one marker name. Setting it pushes the
// value into the tree; reading it never consults the tree.
type Ref[T any] struct {
	index *Index
	name  string
	value T
}

// NewRef creates a handle for name and immediately applies def.
func NewRef[T any](ix *Index, name string, def T) *Ref[T] {
	r := &Ref[T]{index: ix, name: name, value: def}
	ix.Update(name, def)
	return r
}

// Name returns the marker name the handle writes to.
func (r *Ref[T]) Name() string {
	return r.name
}

// Value returns the last value set.
func (r *Ref[T]) Value() T {
	return r.value
}

// Set stores v and updates every location bound to the handle's name.
func (r *Ref[T]) Set(v T) {
	r.value = v
	r.index.Update(r.name, v)
}
