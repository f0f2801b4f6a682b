package chain

import (
	"github.com/ib-77/maybe/pkg/maybe"
)

// Chain wraps a maybe.Result to enable fluent chaining
type Chain[T, E any] struct {
	res maybe.Result[T, E]
}

func Start[T, E any](r maybe.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(maybe.Ok[T, E](v))
}

func FromErr[T, E any](err E) Chain[T, E] {
	return Start(maybe.Err[T](err))
}

func (c Chain[T, E]) Result() maybe.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) stopped() bool {
	return !c.res.IsOk()
}

// Then composes functions that already return maybe.Result[T, E]
func (c Chain[T, E]) Then(onOk func(t T) maybe.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: maybe.AndThen(c.res, onOk)}
}

// Map transforms the ok value to a new value of the same type
func (c Chain[T, E]) Map(onOk func(t T) T) Chain[T, E] {
	return Chain[T, E]{res: maybe.Map(c.res, onOk)}
}

// MapErr transforms the err value to a new value of the same type
func (c Chain[T, E]) MapErr(onErr func(e E) E) Chain[T, E] {
	return Chain[T, E]{res: maybe.MapErr(c.res, onErr)}
}

func (c Chain[T, E]) RepeatUntil(onOk func(t T) maybe.Result[T, E], until func(t T) bool) Chain[T, E] {
	if c.stopped() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.stopped() || !until(c.res.OkValue()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onOk func(t T) maybe.Result[T, E], while func(t T) bool) Chain[T, E] {
	for !c.stopped() && while(c.res.OkValue()) {
		c = c.Then(onOk)
	}
	return c
}

// Or returns the first ok chain among c and alternatives. When none is ok,
// the first err chain wins; when there is none either, c is returned.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	var firstErr *Chain[T, E]

	for _, ch := range append([]Chain[T, E]{c}, alternatives...) {
		if ch.res.IsOk() {
			return ch
		}
		if ch.res.IsErr() && firstErr == nil {
			firstErr = &ch
		}
	}

	if firstErr != nil {
		return *firstErr
	}
	return c
}

// And returns the first chain among c and required that is not ok, or the
// last one when all of them are ok.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if !ch.res.IsOk() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for ok/err without changing the result
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if onOk != nil {
		maybe.Inspect(c.res, onOk)
	}
	if onErr != nil {
		maybe.InspectErr(c.res, onErr)
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T, E]) Finally(onOk func(T) T, onErr func(E) T) T {
	return maybe.Match(c.res, onOk, onErr)
}

// Then chains a function that switches to a new ok type
func Then[T, U, E any](c Chain[T, E], onOk func(T) maybe.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: maybe.AndThen(c.res, onOk)}
}

// Map chains a pure transformation to a new ok type
func Map[T, U, E any](c Chain[T, E], onOk func(T) U) Chain[U, E] {
	return Chain[U, E]{res: maybe.Map(c.res, onOk)}
}

// Finally collapses the chain into a value of any type
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return maybe.Match(c.res, onOk, onErr)
}
