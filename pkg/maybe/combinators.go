package maybe

// Map applies f to the ok value of r. An err value is forwarded untouched.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	switch r.state {
	case StateOk:
		return Ok[U, E](f(r.ok))
	case StateErr:
		return Err[U](r.err)
	default:
		return Result[U, E]{}
	}
}

// MapValue replaces the ok value of r with u.
func MapValue[T, U, E any](r Result[T, E], u U) Result[U, E] {
	switch r.state {
	case StateOk:
		return Ok[U, E](u)
	case StateErr:
		return Err[U](r.err)
	default:
		return Result[U, E]{}
	}
}

// MapErr applies f to the err value of r. An ok value is forwarded untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	switch r.state {
	case StateOk:
		return Ok[T, F](r.ok)
	case StateErr:
		return Err[T](f(r.err))
	default:
		return Result[T, F]{}
	}
}

// MapErrValue replaces the err value of r with v.
func MapErrValue[T, E, F any](r Result[T, E], v F) Result[T, F] {
	switch r.state {
	case StateOk:
		return Ok[T, F](r.ok)
	case StateErr:
		return Err[T](v)
	default:
		return Result[T, F]{}
	}
}

// AndThen calls f with the ok value of r and returns what f returns.
// An err value short-circuits and is carried over to the new ok type.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	switch r.state {
	case StateOk:
		return f(r.ok)
	case StateErr:
		return Err[U](r.err)
	default:
		return Result[U, E]{}
	}
}

// OrElse calls f with the err value of r and returns what f returns.
// An ok value short-circuits and is carried over to the new err type.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	switch r.state {
	case StateOk:
		return Ok[T, F](r.ok)
	case StateErr:
		return f(r.err)
	default:
		return Result[T, F]{}
	}
}

// IntoErr converts r into a result with ok type U. The err value is kept;
// an ok value becomes the zero value of U.
func IntoErr[U, T, E any](r Result[T, E]) Result[U, E] {
	switch r.state {
	case StateOk:
		return DefaultOk[U, E]()
	case StateErr:
		return Err[U](r.err)
	default:
		return Result[U, E]{}
	}
}

// MapVoid drops the ok value of r.
func MapVoid[T, E any](r Result[T, E]) Void[E] {
	return MapValue(r, Unit{})
}

// Flatten removes one level of nesting from an ok result.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	return AndThen(r, func(inner Result[T, E]) Result[T, E] { return inner })
}

// Match folds r into a single value. Empty results fold to the zero value
// of U without calling either function.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	switch r.state {
	case StateOk:
		return onOk(r.ok)
	case StateErr:
		return onErr(r.err)
	default:
		var zero U
		return zero
	}
}

// Inspect calls f with the ok value of r and returns r unchanged.
func Inspect[T, E any](r Result[T, E], f func(T)) Result[T, E] {
	if r.state == StateOk {
		f(r.ok)
	}
	return r
}

// InspectErr calls f with the err value of r and returns r unchanged.
func InspectErr[T, E any](r Result[T, E], f func(E)) Result[T, E] {
	if r.state == StateErr {
		f(r.err)
	}
	return r
}

// FromPair turns the usual (value, error) return pair into a result.
// A nil error gives an ok result.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// ToPair is the inverse of FromPair. An empty result reports
// ErrInvalidAccess.
func ToPair[T any](r Result[T, error]) (T, error) {
	switch r.state {
	case StateOk:
		return r.ok, nil
	case StateErr:
		return r.ok, r.err
	default:
		return r.ok, invalidAccess(StateOk, StateEmpty)
	}
}
