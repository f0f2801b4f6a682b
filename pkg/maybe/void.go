package maybe

// Unit is the ok payload of a Void result.
type Unit struct{}

// Void is a result whose success carries no data.
type Void[E any] = Result[Unit, E]

func OkVoid[E any]() Void[E] {
	return Ok[Unit, E](Unit{})
}

func ErrVoid[E any](err E) Void[E] {
	return Err[Unit](err)
}

// VoidMap calls f when r is ok and wraps what it returns.
func VoidMap[U, E any](r Void[E], f func() U) Result[U, E] {
	return Map(r, func(Unit) U { return f() })
}

// VoidAndThen calls f when r is ok and returns its result.
func VoidAndThen[U, E any](r Void[E], f func() Result[U, E]) Result[U, E] {
	return AndThen(r, func(Unit) Result[U, E] { return f() })
}
