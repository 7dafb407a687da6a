//go:build debug_scope_utils

package scopeutils

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_scope_utils build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_scope_utils build tag is present.
func DebugCheckPow2[T Number](value T, name string) {
	err := CheckPow2[T](value, name)
	if err != nil {
		panic(err)
	}
}

// DebugCheckAligned will verify that the pointer passed in is nil or aligned to at least alignment
// bytes, and panics if it is not. This method no-ops unless the debug_scope_utils build tag is present.
func DebugCheckAligned[T any](ptr *T, alignment uintptr, name string) {
	err := CheckAligned(ptr, alignment, name)
	if err != nil {
		panic(err)
	}
}
