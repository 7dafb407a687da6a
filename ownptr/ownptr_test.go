package ownptr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/scopeutils/ownptr"
)

type resource struct {
	id       int
	released int
}

func releaseResource(r *resource) {
	r.released++
}

func TestOwnedReleasesExactlyOnce(t *testing.T) {
	target := &resource{id: 1}

	wrapper := ownptr.New(target, true, releaseResource)
	require.True(t, wrapper.IsOwned())
	require.Same(t, target, wrapper.Get())
	require.Equal(t, 0, target.released)

	wrapper.Destroy()
	require.Equal(t, 1, target.released)
	require.False(t, wrapper.IsOwned())
	require.Nil(t, wrapper.Get())

	wrapper.Destroy()
	require.Equal(t, 1, target.released)
}

func TestBorrowedNeverReleases(t *testing.T) {
	target := &resource{id: 2}

	wrapper := ownptr.New(target, false, releaseResource)
	require.False(t, wrapper.IsOwned())
	require.Same(t, target, wrapper.Get())

	wrapper.Destroy()
	require.Equal(t, 0, target.released)

	// A borrowed wrapper stays usable after Destroy, since it never affects
	// the pointee's lifetime.
	require.Equal(t, target, wrapper.Get())
}

func TestGetIgnoresOwnershipFlag(t *testing.T) {
	target := &resource{id: 3}

	owned := ownptr.New(target, true, releaseResource)
	borrowed := ownptr.New(target, false, releaseResource)

	require.Same(t, owned.Get(), borrowed.Get())
	require.Same(t, target, owned.Get())

	owned.Destroy()
}

func TestNilTarget(t *testing.T) {
	released := 0
	wrapper := ownptr.New[resource](nil, true, func(*resource) { released++ })

	require.Nil(t, wrapper.Get())
	require.False(t, wrapper.IsOwned())

	wrapper.Destroy()
	require.Equal(t, 0, released)
}

func TestNilReleaseCallback(t *testing.T) {
	target := &resource{id: 4}

	wrapper := ownptr.New(target, true, nil)
	require.True(t, wrapper.IsOwned())

	require.NotPanics(t, wrapper.Destroy)
	require.False(t, wrapper.IsOwned())
}

func TestIndependentBorrowersNoDoubleRelease(t *testing.T) {
	target := &resource{id: 5}

	owner := ownptr.New(target, true, releaseResource)
	observerA := ownptr.New(target, false, releaseResource)
	observerB := ownptr.New(target, false, releaseResource)

	observerA.Destroy()
	observerB.Destroy()
	owner.Destroy()
	owner.Destroy()

	require.Equal(t, 1, target.released)
}

func TestMoveTransfersOwnership(t *testing.T) {
	target := &resource{id: 6}

	wrapper := ownptr.New(target, true, releaseResource)
	moved := wrapper.Move()

	require.False(t, wrapper.IsOwned())
	require.Nil(t, wrapper.Get())
	require.True(t, moved.IsOwned())
	require.Same(t, target, moved.Get())

	wrapper.Destroy()
	require.Equal(t, 0, target.released)

	moved.Destroy()
	require.Equal(t, 1, target.released)
}

func TestReleasePanicPropagatesAfterClear(t *testing.T) {
	target := &resource{id: 7}

	wrapper := ownptr.New(target, true, func(*resource) { panic("release failed") })

	require.PanicsWithValue(t, "release failed", wrapper.Destroy)

	// The wrapper cleared before the callback ran, so the release cannot fire
	// a second time.
	require.False(t, wrapper.IsOwned())
	require.NotPanics(t, wrapper.Destroy)
}
