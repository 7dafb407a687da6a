package scopeutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// AlignmentError is the error returned from CheckAligned or other methods if a pointer does not meet an alignment requirement
var AlignmentError error = errors.New("pointer is not sufficiently aligned")

// ZeroStepError is the error returned from xrange.Range.Validate when a range was built with a step of zero
var ZeroStepError error = errors.New("range step must not be zero")
