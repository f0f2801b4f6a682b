package maybe

// Release tears down the live payload, if any, and leaves r empty.
// A payload implementing Releaser (on its value or pointer) has its Release
// method called once. An empty result releases nothing.
func (r *Result[T, E]) Release() {
	switch r.state {
	case StateOk:
		release(&r.ok)
	case StateErr:
		release(&r.err)
	}
	*r = Result[T, E]{}
}

// Take moves the content of r out and leaves r empty. The payload is not
// released: ownership passes to the returned result.
func (r *Result[T, E]) Take() Result[T, E] {
	v := *r
	*r = Result[T, E]{}
	return v
}

// Assign releases the payload r holds and moves src into r, leaving src
// empty. Assigning a result to itself does nothing.
func (r *Result[T, E]) Assign(src *Result[T, E]) {
	if r == src {
		return
	}
	r.Release()
	*r = src.Take()
}

// Set releases the payload r holds and stores v in its place.
func (r *Result[T, E]) Set(v Result[T, E]) {
	r.Release()
	*r = v
}

// Clone duplicates r. Payloads implementing Cloner are copied through it,
// everything else by Go assignment.
func (r Result[T, E]) Clone() Result[T, E] {
	switch r.state {
	case StateOk:
		return Ok[T, E](clone(r.ok))
	case StateErr:
		return Err[T, E](clone(r.err))
	default:
		return Result[T, E]{}
	}
}
