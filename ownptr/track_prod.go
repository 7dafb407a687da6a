//go:build !debug_scope_utils

package ownptr

import "unsafe"

// trackAcquire records an owned target in the live tracker. This method
// no-ops unless the debug_scope_utils build tag is present.
func trackAcquire(addr unsafe.Pointer) {
}

// trackRelease removes an owned target from the live tracker. This method
// no-ops unless the debug_scope_utils build tag is present.
func trackRelease(addr unsafe.Pointer) {
}
