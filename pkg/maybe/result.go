package maybe

import "fmt"

// State is the discriminant of a Result.
type State uint8

const (
	StateEmpty State = iota
	StateOk
	StateErr
)

func (s State) String() string {
	switch s {
	case StateOk:
		return "ok"
	case StateErr:
		return "err"
	default:
		return "empty"
	}
}

// Result holds an ok value of type T or an err value of type E.
// The field of the inactive side is always the zero value of its type.
type Result[T, E any] struct {
	state State
	ok    T
	err   E
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		state: StateOk,
		ok:    value,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		state: StateErr,
		err:   err,
	}
}

// DefaultOk returns an ok result holding the zero value of T.
func DefaultOk[T, E any]() Result[T, E] {
	var zero T
	return Ok[T, E](zero)
}

// DefaultErr returns an err result holding the zero value of E.
func DefaultErr[T, E any]() Result[T, E] {
	var zero E
	return Err[T, E](zero)
}

func (r Result[T, E]) State() State {
	return r.state
}

func (r Result[T, E]) IsOk() bool {
	return r.state == StateOk
}

func (r Result[T, E]) IsErr() bool {
	return r.state == StateErr
}

func (r Result[T, E]) IsEmpty() bool {
	return r.state == StateEmpty
}

func (r Result[T, E]) String() string {
	switch r.state {
	case StateOk:
		return fmt.Sprintf("Ok(%v)", r.ok)
	case StateErr:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Empty"
	}
}
