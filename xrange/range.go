package xrange

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/vkngwrapper/arsenal/scopeutils"
)

// Range is a lazy, finite sequence of integers advancing from begin toward end
// by step. end is exclusive: a traversal stops at the first value that reaches
// or passes end in the direction of step, so a non-unit step that jumps over
// end exactly still terminates.
//
// The sequence's element type follows the bound type, but cursor arithmetic
// does not run in it: bounds are promoted once, to signed 64-bit integers for
// signed instantiations and unsigned 64-bit integers for unsigned ones, and
// every advance and comparison happens at that width. Values convert back to
// the bound type only when read, so narrow bound types never wrap
// mid-traversal. A negative step over an unsigned instantiation is defined to
// produce an empty sequence (descending past zero would require wraparound,
// which never occurs).
//
// A Range is an immutable value. Each traversal creates fresh cursor state, so
// the same Range can be walked any number of times independently.
type Range[T constraints.Integer] struct {
	begin T
	end   T
	step  int64
}

// NewSteppedRange builds the sequence begin, begin+step, begin+2*step, ...
// up to but excluding end. A step of zero is a programming error. It is not
// checked in normal builds, but builds with the debug_scope_utils tag panic at
// construction. A step pointing away from end simply yields an empty sequence.
func NewSteppedRange[T constraints.Integer](begin, end T, step int64) Range[T] {
	r := Range[T]{begin: begin, end: end, step: step}
	scopeutils.DebugValidate(r)
	return r
}

// NewRange builds the sequence begin, begin+1, ... up to but excluding end.
func NewRange[T constraints.Integer](begin, end T) Range[T] {
	return NewSteppedRange(begin, end, 1)
}

// NewUpTo builds the sequence 0, 1, ... up to but excluding end.
func NewUpTo[T constraints.Integer](end T) Range[T] {
	return NewSteppedRange(0, end, 1)
}

// Begin returns the inclusive lower cursor position of the range.
func (r Range[T]) Begin() T { return r.begin }

// End returns the exclusive bound of the range.
func (r Range[T]) End() T { return r.end }

// Step returns the per-advance increment of the range.
func (r Range[T]) Step() int64 { return r.step }

// Validate reports the misuses that the constructors deliberately do not check
// in normal builds: a zero step, or a negative step over an unsigned bound
// type. The latter is still defined behavior (an empty sequence), but it is
// almost always a sign confusion at the call site, so debug builds flag it.
func (r Range[T]) Validate() error {
	if r.step == 0 {
		return cerrors.Wrapf(scopeutils.ZeroStepError, "range over [%d, %d)", r.begin, r.end)
	}
	if r.step < 0 && isUnsigned[T]() {
		return errors.Errorf("negative step %d over an unsigned range [%d, %d) produces no values", r.step, r.begin, r.end)
	}
	return nil
}

// Len returns the number of values a full traversal produces.
func (r Range[T]) Len() int {
	beginCursor := promote(r.begin)
	endCursor := promote(r.end)

	if r.step > 0 {
		var span uint64
		if isUnsigned[T]() {
			if endCursor <= beginCursor {
				return 0
			}
			span = endCursor - beginCursor
		} else {
			if int64(endCursor) <= int64(beginCursor) {
				return 0
			}
			span = uint64(int64(endCursor) - int64(beginCursor))
		}
		step := uint64(r.step)
		return int((span + step - 1) / step)
	}

	if isUnsigned[T]() || int64(endCursor) >= int64(beginCursor) {
		return 0
	}
	span := uint64(int64(beginCursor) - int64(endCursor))
	step := uint64(-r.step)
	return int((span + step - 1) / step)
}

// isUnsigned reports whether T is an unsigned bound type. The comparison is
// resolved per instantiation.
func isUnsigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 > zero
}

// promote widens a bound to the 64-bit cursor width of its flavor. The result
// is a bit pattern: signed flavors store the sign-extended value and read it
// back through int64, unsigned flavors store the zero-extended value.
func promote[T constraints.Integer](value T) uint64 {
	if isUnsigned[T]() {
		return uint64(value)
	}
	return uint64(int64(value))
}
