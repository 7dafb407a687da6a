package ownptr

import (
	"unsafe"

	"github.com/vkngwrapper/arsenal/scopeutils"
)

// ownedMask is the bit of the stored address that records ownership. It is only
// free for tagging because targets are required to be aligned to at least two
// bytes.
const ownedMask uintptr = 1

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Ptr wraps a raw pointer and an ownership flag into a single tagged word.
// Bit 0 of the stored address records whether this wrapper is responsible for
// releasing the pointee, so the target must be nil or aligned to at least two
// bytes. That precondition is not checked in normal builds, and a misaligned
// target silently corrupts the wrapped address. Builds with the
// debug_scope_utils tag panic on construction instead.
//
// A Ptr is single-owner: it must not be copied by value (two wrappers claiming
// the same release is a double-free waiting to happen). Use Move to transfer
// ownership. go vet's copylocks check reports accidental value copies.
//
// Ptr performs no synchronization and must not be shared across goroutines
// without external locking.
type Ptr[T any] struct {
	tagged  unsafe.Pointer
	release func(*T)
	noCopy  noCopy
}

// New wraps target with the provided ownership flag. The release callback
// stands in for the pointee's destructor and is invoked by Destroy when, and
// only when, the wrapper owns its target. A nil target is always stored as
// borrowed, so releasing nil is a no-op.
//
// The ownership flag is immutable after construction.
func New[T any](target *T, owned bool, release func(*T)) Ptr[T] {
	scopeutils.DebugCheckAligned(target, 2, "target")

	p := Ptr[T]{release: release}
	if target == nil {
		return p
	}

	addr := unsafe.Pointer(target)
	if owned {
		addr = unsafe.Add(addr, ownedMask)
		trackAcquire(unsafe.Pointer(target))
	}
	p.tagged = addr
	return p
}

// Get returns the wrapped pointer with the ownership bit masked off. It may be
// called any number of times and has no side effects. The returned address is
// the same regardless of the ownership flag.
func (p *Ptr[T]) Get() *T {
	return (*T)(unsafe.Pointer(uintptr(p.tagged) &^ ownedMask))
}

// IsOwned reports whether this wrapper is responsible for releasing its
// target.
func (p *Ptr[T]) IsOwned() bool {
	return uintptr(p.tagged)&ownedMask != 0
}

// Destroy releases the target if this wrapper owns it, then clears the
// wrapper. The release callback runs at most once per wrapper: a second
// Destroy is a no-op, as is Destroy on a borrowed wrapper, which leaves the
// wrapper untouched and never affects the pointee's lifetime.
//
// A panic raised by the release callback propagates to the caller after the
// wrapper has already been cleared, so the release cannot run twice.
func (p *Ptr[T]) Destroy() {
	if !p.IsOwned() {
		return
	}

	target := p.Get()
	release := p.release
	p.tagged = nil
	p.release = nil

	trackRelease(unsafe.Pointer(target))
	if release != nil {
		release(target)
	}
}

// Move transfers the wrapper's contents to the returned value and leaves the
// receiver cleared. This is how an owned pointer changes hands without two
// wrappers both claiming the release.
func (p *Ptr[T]) Move() Ptr[T] {
	moved := Ptr[T]{tagged: p.tagged, release: p.release}
	p.tagged = nil
	p.release = nil
	return moved
}
