package scopeutils

import (
	"math/bits"
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint | ~int64 | ~uint64 | ~uintptr
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// CheckAligned verifies that ptr is nil or a multiple of alignment, which must be
// a power of two.
func CheckAligned[T any](ptr *T, alignment uintptr, name string) error {
	if ptr == nil {
		return nil
	}
	if uintptr(unsafe.Pointer(ptr))&(alignment-1) != 0 {
		return cerrors.Wrapf(AlignmentError, "%s is %p, required alignment is %d", name, ptr, alignment)
	}
	return nil
}

// IsPowerOfTwo returns true when exactly one bit of x is set. Unlike CheckPow2,
// zero is not considered a power of two.
func IsPowerOfTwo(x uint64) bool {
	return bits.OnesCount64(x) == 1
}

// AlignDown rounds x down to the nearest multiple of alignment, which must be a
// power of two.
func AlignDown(x, alignment uint64) uint64 {
	return x &^ (alignment - 1)
}

// AlignUp rounds x up to the nearest multiple of alignment, which must be a
// power of two.
func AlignUp(x, alignment uint64) uint64 {
	return AlignDown(x+alignment-1, alignment)
}

// AlignPtr rounds ptr up to the next alignment boundary. The returned pointer
// must still lie within the allocation that ptr points into, so the allocation
// needs at least alignment-1 bytes of slack past ptr.
func AlignPtr[T any](ptr *T, alignment uintptr) *T {
	misalign := uintptr(unsafe.Pointer(ptr)) & (alignment - 1)
	if misalign == 0 {
		return ptr
	}
	return (*T)(unsafe.Add(unsafe.Pointer(ptr), alignment-misalign))
}

// AlignedBuffer allocates a size-byte buffer whose first element sits on an
// alignment boundary. alignment must be a power of two. The returned slice is
// carved out of a larger allocation, so its capacity is exactly size.
func AlignedBuffer(size int, alignment uintptr) []byte {
	buf := make([]byte, size+int(alignment))
	misalign := uintptr(unsafe.Pointer(&buf[0])) & (alignment - 1)
	offset := 0
	if misalign != 0 {
		offset = int(alignment - misalign)
	}
	return buf[offset : offset+size : offset+size]
}

// PtrSpan reinterprets first as the start of a count-element array and returns
// a slice sharing that memory. The caller is responsible for ensuring count
// elements actually live there.
func PtrSpan[T any](first *T, count int) []T {
	return unsafe.Slice(first, count)
}
