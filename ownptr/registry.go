package ownptr

import (
	"sync"
	"unsafe"

	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// liveTracker accounts for every owned target that has been acquired through
// New and not yet released through Destroy. The accounting hooks are real only
// in builds with the debug_scope_utils tag. In normal builds the tracker stays
// empty and the report methods are cheap no-ops in practice.
//
// The mutex protects the diagnostic map only. It does not make Ptr itself safe
// for concurrent use.
type liveTracker struct {
	mutex    sync.Mutex
	entries  *swiss.Map[uintptr, uint64]
	acquired uint64
	released uint64
}

var tracker = liveTracker{
	entries: swiss.NewMap[uintptr, uint64](42),
}

func (t *liveTracker) acquire(addr unsafe.Pointer) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.acquired++
	t.entries.Put(uintptr(addr), t.acquired)
}

func (t *liveTracker) release(addr unsafe.Pointer) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.released++
	t.entries.Delete(uintptr(addr))
}

// LiveCount returns the number of owned targets that have been acquired but
// not yet released. It is always zero unless the module was built with the
// debug_scope_utils tag.
func LiveCount() int {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	return tracker.entries.Count()
}

// LiveJsonData populates a json object with the current ownership accounting
func LiveJsonData(json jwriter.ObjectState) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	json.Name("AcquiredOwned").Int(int(tracker.acquired))
	json.Name("ReleasedOwned").Int(int(tracker.released))
	json.Name("LiveOwned").Int(tracker.entries.Count())
}

// PrintLiveReport writes a json report of the current ownership accounting to
// the provided writer, including one entry per still-live owned target.
func PrintLiveReport(writer *jwriter.Writer) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	objState := writer.Object()
	defer objState.End()

	objState.Name("AcquiredOwned").Int(int(tracker.acquired))
	objState.Name("ReleasedOwned").Int(int(tracker.released))
	objState.Name("LiveOwned").Int(tracker.entries.Count())

	arrayState := objState.Name("Live").Array()
	defer arrayState.End()

	tracker.entries.Iter(func(addr uintptr, sequence uint64) bool {
		obj := arrayState.Object()
		obj.Name("Address").Int(int(addr))
		obj.Name("Sequence").Int(int(sequence))
		obj.End()
		return false
	})
}

// DebugLogLive calls logFunc once for every owned target that has been
// acquired but not released. sequence is the ordinal of the acquisition, so
// lower values have been live longer. This reports nothing unless the module
// was built with the debug_scope_utils tag.
func DebugLogLive(logger *slog.Logger, logFunc func(log *slog.Logger, address uintptr, sequence uint64)) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	tracker.entries.Iter(func(addr uintptr, sequence uint64) bool {
		logFunc(logger, addr, sequence)
		return false
	})
}
