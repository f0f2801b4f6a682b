package maybe

// Inspector is implemented by every Result regardless of its payload types.
type Inspector interface {
	IsOk() bool
	IsErr() bool
	// IsEmpty reports a result that holds neither side (zero or moved-from)
	IsEmpty() bool
}

// OkProvider defines types that can hand out an ok value
type OkProvider[T any] interface {
	Inspector
	// OkValue panics if the value is not ok
	OkValue() T
	OkValueOr(def T) T
}

// ErrProvider defines types that can hand out an err value
type ErrProvider[E any] interface {
	Inspector
	// ErrValue panics if the value is not err
	ErrValue() E
	ErrValueOr(def E) E
}

// Releaser is implemented by payloads that own something to tear down.
// Release, Set and Assign call it exactly once for the payload they drop.
type Releaser interface {
	Release()
}

// Cloner is implemented by payloads that need more than a Go value copy to
// be duplicated.
type Cloner[T any] interface {
	Clone() T
}

var (
	_ OkProvider[int]     = Result[int, string]{}
	_ ErrProvider[string] = Result[int, string]{}
)
