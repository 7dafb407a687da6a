package scope

// With evaluates acquire and runs body with the produced value only when
// acquisition reports success. The value's cleanup, if any, is the caller's
// problem. Use WithRelease when the resource needs releasing.
func With[T any](acquire func() (T, bool), body func(T)) {
	value, ok := acquire()
	if !ok {
		return
	}

	body(value)
}

// WithRelease evaluates acquire and, when acquisition reports success,
// schedules release and runs body with the produced value. release is
// guaranteed to run on every path out of body, including a panic raised
// inside it, and runs exactly once. When acquisition fails neither body nor
// release runs.
func WithRelease[T any](acquire func() (T, bool), release func(T), body func(T)) {
	value, ok := acquire()
	if !ok {
		return
	}

	guard := NewGuard(func() { release(value) })
	defer guard.Invoke()

	body(value)
}

// WithReleaseErr is WithRelease for acquisitions that report failure as an
// error. A failed acquisition returns the acquisition error without running
// body or release. Otherwise body's error is returned, and release runs on
// every path out of body.
func WithReleaseErr[T any](acquire func() (T, error), release func(T), body func(T) error) error {
	value, err := acquire()
	if err != nil {
		return err
	}

	guard := NewGuard(func() { release(value) })
	defer guard.Invoke()

	return body(value)
}
