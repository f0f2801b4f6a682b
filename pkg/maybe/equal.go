package maybe

// Equal reports whether a and b are both ok with equal values or both err
// with equal values. Empty results are not equal to anything.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc is Equal for payloads compared with eqOk and eqErr.
func EqualFunc[T, E any](a, b Result[T, E], eqOk func(T, T) bool, eqErr func(E, E) bool) bool {
	if a.state != b.state {
		return false
	}
	switch a.state {
	case StateOk:
		return eqOk(a.ok, b.ok)
	case StateErr:
		return eqErr(a.err, b.err)
	default:
		return false
	}
}
