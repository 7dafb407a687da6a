package xrange

import "golang.org/x/exp/constraints"

// Iterator is a single traversal of a Range. Each call to Range.Iterator
// positions a fresh cursor before the range's first value, so one Range can be
// walked several times, and live cursors over the same value do not disturb
// each other.
//
// current holds the 64-bit promoted cursor (see promote); it converts back to
// T only when read through Value.
type Iterator[T constraints.Integer] struct {
	r       Range[T]
	current uint64
	started bool
}

// Iterator returns a new cursor positioned before the first value.
func (r Range[T]) Iterator() Iterator[T] {
	return Iterator[T]{r: r}
}

// Next advances the cursor, returning false once the sequence has reached or
// passed the range's end. A typical traversal:
//
//	for it := r.Iterator(); it.Next(); {
//		process(it.Value())
//	}
func (it *Iterator[T]) Next() bool {
	if !it.started {
		it.started = true
		it.current = promote(it.r.begin)
	} else {
		it.current = advance[T](it.current, it.r.step)
	}

	return !passedEnd[T](it.current, promote(it.r.end), it.r.step)
}

// Value returns the value under the cursor. It is only meaningful after a Next
// call that returned true. Every emitted value lies between the range's
// bounds, so the conversion from the 64-bit cursor back to T is exact.
func (it *Iterator[T]) Value() T {
	return T(it.current)
}

// ForEach walks the sequence from the beginning, calling visit once per value.
// A non-nil error from visit stops the walk and is returned.
func (r Range[T]) ForEach(visit func(value T) error) error {
	for it := r.Iterator(); it.Next(); {
		err := visit(it.Value())
		if err != nil {
			return err
		}
	}

	return nil
}

// Collect performs a full traversal and returns the produced values.
func (r Range[T]) Collect() []T {
	values := make([]T, 0, r.Len())
	for it := r.Iterator(); it.Next(); {
		values = append(values, it.Value())
	}

	return values
}

// advance moves a promoted cursor by step in the 64-bit arithmetic of T's
// flavor. Unsigned flavors only ever advance by positive steps, because
// passedEnd ends a negative-step unsigned traversal before its first value.
func advance[T constraints.Integer](current uint64, step int64) uint64 {
	if isUnsigned[T]() {
		return current + uint64(step)
	}

	return uint64(int64(current) + step)
}

// passedEnd implements the termination rule: a positive step stops at the
// first value >= end, a negative step at the first value <= end. current and
// end are promoted cursors compared in the 64-bit arithmetic of T's flavor.
func passedEnd[T constraints.Integer](current, end uint64, step int64) bool {
	if step > 0 {
		if isUnsigned[T]() {
			return current >= end
		}
		return int64(current) >= int64(end)
	}

	if isUnsigned[T]() {
		return true
	}

	return int64(current) <= int64(end)
}
