package maybe

// Get returns the ok value and true if r is ok. This is the truthiness
// check of a result: the bool is true iff r holds an ok value.
func (r Result[T, E]) Get() (T, bool) {
	return r.ok, r.state == StateOk
}

// GetErr returns the err value and true if r is err.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, r.state == StateErr
}

// OkValue returns the ok value. It panics with *InvalidAccessError if r is
// not ok.
func (r Result[T, E]) OkValue() T {
	mustHave(StateOk, r.state)
	return r.ok
}

// ErrValue returns the err value. It panics with *InvalidAccessError if r is
// not err.
func (r Result[T, E]) ErrValue() E {
	mustHave(StateErr, r.state)
	return r.err
}

// TryOkValue is OkValue with the mismatch reported as an error matching
// ErrInvalidAccess instead of a panic.
func (r Result[T, E]) TryOkValue() (T, error) {
	if r.state != StateOk {
		var zero T
		return zero, invalidAccess(StateOk, r.state)
	}
	return r.ok, nil
}

func (r Result[T, E]) TryErrValue() (E, error) {
	if r.state != StateErr {
		var zero E
		return zero, invalidAccess(StateErr, r.state)
	}
	return r.err, nil
}

// OkPtr returns a pointer to the ok value stored in r.
func (r *Result[T, E]) OkPtr() *T {
	mustHave(StateOk, r.state)
	return &r.ok
}

// ErrPtr returns a pointer to the err value stored in r.
func (r *Result[T, E]) ErrPtr() *E {
	mustHave(StateErr, r.state)
	return &r.err
}

// TakeOk moves the ok value out of r, leaving r empty.
func (r *Result[T, E]) TakeOk() T {
	mustHave(StateOk, r.state)
	v := r.ok
	*r = Result[T, E]{}
	return v
}

// TakeErr moves the err value out of r, leaving r empty.
func (r *Result[T, E]) TakeErr() E {
	mustHave(StateErr, r.state)
	e := r.err
	*r = Result[T, E]{}
	return e
}

func (r Result[T, E]) OkValueOr(def T) T {
	if r.state == StateOk {
		return r.ok
	}
	return def
}

func (r Result[T, E]) ErrValueOr(def E) E {
	if r.state == StateErr {
		return r.err
	}
	return def
}

// OkValueOrElse is OkValueOr with a lazily computed default.
func (r Result[T, E]) OkValueOrElse(def func() T) T {
	if r.state == StateOk {
		return r.ok
	}
	return def()
}

func (r Result[T, E]) ErrValueOrElse(def func() E) E {
	if r.state == StateErr {
		return r.err
	}
	return def()
}
