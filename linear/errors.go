// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"fmt"
)

// Precondition failures. Operations that can fail panic
// with an error that wraps one of these.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNotFinite       = errors.New("non-finite value")
)

func checkIndex(i int) {
	if i < 0 || i > 3 {
		panic(fmt.Errorf("linear: index %d not in [0, 3]: %w", i, ErrIndexOutOfRange))
	}
}

// Recover stops a panic caused by a precondition
// failure and stores its error in *err.
// Any other panic is propagated.
// It must be called directly by a deferred function:
//
//	defer linear.Recover(&err)
func Recover(err *error) {
	x := recover()
	if x == nil {
		return
	}
	if e, ok := x.(error); ok {
		if errors.Is(e, ErrIndexOutOfRange) || errors.Is(e, ErrDivisionByZero) || errors.Is(e, ErrNotFinite) {
			*err = e
			return
		}
	}
	panic(x)
}
