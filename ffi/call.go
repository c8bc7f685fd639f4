package ffi

// Call runs a native function that reports through a status out-parameter.
//
// It hands fn a fresh ok Status. If fn leaves it ok, fn's result is returned.
// Otherwise Call returns the zero T and the status as an *Error. The status
// is released on every path, including a panic inside fn.
func Call[T any](fn func(st *Status) T) (T, error) {
	st := NewOK()
	defer st.Release()

	v := fn(&st)
	if !st.OK() {
		var zero T
		return zero, st.ToError()
	}
	return v, nil
}

// Call1 is Call for a native function with one leading argument.
func Call1[A, T any](fn func(A, *Status) T, a A) (T, error) {
	return Call(func(st *Status) T { return fn(a, st) })
}

// Call2 is Call for a native function with two leading arguments.
func Call2[A, B, T any](fn func(A, B, *Status) T, a A, b B) (T, error) {
	return Call(func(st *Status) T { return fn(a, b, st) })
}

// Call3 is Call for a native function with three leading arguments.
func Call3[A, B, C, T any](fn func(A, B, C, *Status) T, a A, b B, c C) (T, error) {
	return Call(func(st *Status) T { return fn(a, b, c, st) })
}

// Call4 is Call for a native function with four leading arguments.
func Call4[A, B, C, D, T any](fn func(A, B, C, D, *Status) T, a A, b B, c C, d D) (T, error) {
	return Call(func(st *Status) T { return fn(a, b, c, d, st) })
}

// Run is Call for a native function with no result.
func Run(fn func(st *Status)) error {
	_, err := Call(func(st *Status) struct{} {
		fn(st)
		return struct{}{}
	})
	return err
}

// Run1 is Run for a native function with one leading argument.
func Run1[A any](fn func(A, *Status), a A) error {
	return Run(func(st *Status) { fn(a, st) })
}

// Run2 is Run for a native function with two leading arguments.
func Run2[A, B any](fn func(A, B, *Status), a A, b B) error {
	return Run(func(st *Status) { fn(a, b, st) })
}

// Run3 is Run for a native function with three leading arguments.
func Run3[A, B, C any](fn func(A, B, C, *Status), a A, b B, c C) error {
	return Run(func(st *Status) { fn(a, b, c, st) })
}

// Run4 is Run for a native function with four leading arguments.
func Run4[A, B, C, D any](fn func(A, B, C, D, *Status), a A, b B, c C, d D) error {
	return Run(func(st *Status) { fn(a, b, c, d, st) })
}
