package utils

// TrackedState remembers the previous value so edges can be detected.
type TrackedState[T comparable] struct {
	LastValue T
	Value     T
	Changed   bool
}

// Update stores val and reports whether it differs from the previous value.
func (t *TrackedState[T]) Update(val T) (updated bool) {
	t.LastValue = t.Value
	t.Value = val
	t.Changed = t.LastValue != t.Value
	return t.Changed
}

// Rose reports a false to true transition on the last update.
func Rose(t *TrackedState[bool]) bool {
	return t.Changed && t.Value
}

// Fell reports a true to false transition on the last update.
func Fell(t *TrackedState[bool]) bool {
	return t.Changed && !t.Value
}
