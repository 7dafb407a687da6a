package scope

// Guard holds a single deferred action and fires it exactly once. Install it
// with defer so the action runs when control leaves the enclosing scope,
// whether by fall-through, early return, or panic unwind:
//
//	guard := scope.NewGuard(func() { resource.Close() })
//	defer guard.Invoke()
//
// Multiple guards installed this way in one scope fire in reverse installation
// order, matching stack unwind order. The guard owns nothing but the action.
// Whatever resource the action closes over belongs to the surrounding code.
//
// A Guard performs no synchronization and must not be shared across goroutines
// without external locking.
type Guard struct {
	action func()
}

// NewGuard captures action without invoking it. The returned guard is armed.
func NewGuard(action func()) *Guard {
	return &Guard{action: action}
}

// Armed reports whether the guard's action has yet to run.
func (g *Guard) Armed() bool {
	return g.action != nil
}

// Invoke runs the action if the guard is still armed and disarms the guard.
// Calls after the first are no-ops. The guard disarms before the action runs,
// so an action that panics still cannot fire twice. The panic itself
// propagates to the caller untouched.
func (g *Guard) Invoke() {
	if g.action == nil {
		return
	}

	action := g.action
	g.action = nil
	action()
}
