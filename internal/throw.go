package internal

import "github.com/pkg/errors"

// The engine itself never fails; it degrades. Broken ring links are a bug,
// not bad input, and threading errors through every ring walk for that would
// add a ton of noise. Instead, invariant checks panic with a TriangulateError
// and the checked public API recovers to convert it to an error.

type TriangulateError error

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError(errors.Errorf(format, args...)))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
