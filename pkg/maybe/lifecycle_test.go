package maybe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resource logs its name when released.
type resource struct {
	flag int
	name string
	log  *strings.Builder
}

func newResource(flag int, name string, log *strings.Builder) *resource {
	return &resource{flag: flag, name: name, log: log}
}

func (r *resource) Release() {
	r.log.WriteString("[" + r.name + "]")
}

// handle implements Releaser only on its pointer.
type handle struct {
	released *int
}

func (h *handle) Release() {
	*h.released++
}

type names []string

func (n names) Clone() names {
	return append(names(nil), n...)
}

type resourceResult = Result[*resource, *resource]

func TestRelease_OkValue(t *testing.T) {
	t.Parallel()

	var log strings.Builder
	res := Ok[*resource, *resource](newResource(0, "ok", &log))
	res.Release()

	assert.Equal(t, "[ok]", log.String())
	assert.True(t, res.IsEmpty())

	res.Release()
	assert.Equal(t, "[ok]", log.String())
}

func TestRelease_ErrValue(t *testing.T) {
	t.Parallel()

	var log strings.Builder
	res := Err[*resource](newResource(0, "err", &log))
	res.Release()

	assert.Equal(t, "[err]", log.String())
}

func TestSet_ReleasesPreviousPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		first  func(log *strings.Builder) resourceResult
		second func(log *strings.Builder) resourceResult
		isOk   bool
	}{
		{
			name:   "ok to ok",
			first:  func(log *strings.Builder) resourceResult { return Ok[*resource, *resource](newResource(0, "first", log)) },
			second: func(log *strings.Builder) resourceResult { return Ok[*resource, *resource](newResource(42, "second", log)) },
			isOk:   true,
		},
		{
			name:   "err to err",
			first:  func(log *strings.Builder) resourceResult { return Err[*resource](newResource(0, "first", log)) },
			second: func(log *strings.Builder) resourceResult { return Err[*resource](newResource(42, "second", log)) },
		},
		{
			name:   "err to ok",
			first:  func(log *strings.Builder) resourceResult { return Err[*resource](newResource(0, "first", log)) },
			second: func(log *strings.Builder) resourceResult { return Ok[*resource, *resource](newResource(42, "second", log)) },
			isOk:   true,
		},
		{
			name:   "ok to err",
			first:  func(log *strings.Builder) resourceResult { return Ok[*resource, *resource](newResource(0, "first", log)) },
			second: func(log *strings.Builder) resourceResult { return Err[*resource](newResource(42, "second", log)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log strings.Builder

			val := tt.first(&log)
			val.Set(tt.second(&log))
			assert.Equal(t, "[first]", log.String())

			if tt.isOk {
				assert.Equal(t, 42, val.OkValue().flag)
			} else {
				assert.Equal(t, 42, val.ErrValue().flag)
			}

			val.Release()
			assert.Equal(t, "[first][second]", log.String())
		})
	}
}

func TestAssign_MovesSource(t *testing.T) {
	t.Parallel()

	var log strings.Builder

	val := Ok[*resource, *resource](newResource(0, "first", &log))
	src := Err[*resource](newResource(42, "second", &log))

	val.Assign(&src)
	assert.True(t, src.IsEmpty())
	assert.Equal(t, 42, val.ErrValue().flag)

	src.Release()
	assert.Equal(t, "[first]", log.String())

	val.Release()
	assert.Equal(t, "[first][second]", log.String())
}

func TestAssign_Self(t *testing.T) {
	t.Parallel()

	var log strings.Builder
	val := Ok[*resource, *resource](newResource(1, "only", &log))

	val.Assign(&val)

	assert.Empty(t, log.String())
	assert.Equal(t, 1, val.OkValue().flag)
}

func TestSet_FromEmpty(t *testing.T) {
	t.Parallel()

	for _, isOk := range []bool{true, false} {
		var log strings.Builder
		var val resourceResult

		if isOk {
			val.Set(Ok[*resource, *resource](newResource(42, "ok", &log)))
			assert.Equal(t, 42, val.OkValue().flag)
		} else {
			val.Set(Err[*resource](newResource(42, "err", &log)))
			assert.Equal(t, 42, val.ErrValue().flag)
		}
		assert.Empty(t, log.String())

		val.Release()
		if isOk {
			assert.Equal(t, "[ok]", log.String())
		} else {
			assert.Equal(t, "[err]", log.String())
		}
	}
}

func TestTake_DoesNotReleaseMovedPayload(t *testing.T) {
	t.Parallel()

	var log strings.Builder
	val := Ok[*resource, *resource](newResource(42, "ok", &log))

	other := val.Take()
	val.Release()
	assert.Empty(t, log.String())
	assert.True(t, val.IsEmpty())
	require.True(t, other.IsOk())
	assert.Equal(t, 42, other.OkValue().flag)

	moved := other.TakeOk()
	other.Release()
	assert.Empty(t, log.String())

	moved.Release()
	assert.Equal(t, "[ok]", log.String())
}

func TestRelease_PointerReceiverOnValuePayload(t *testing.T) {
	t.Parallel()

	released := 0
	res := Ok[handle, string](handle{released: &released})
	res.Release()

	assert.Equal(t, 1, released)
}

func TestRelease_NilPointerPayload(t *testing.T) {
	t.Parallel()

	res := Ok[*resource, string](nil)
	assert.NotPanics(t, res.Release)
	assert.True(t, res.IsEmpty())
}

func TestRelease_PlainPayload(t *testing.T) {
	t.Parallel()

	res := Err[int]("boom")
	res.Release()
	assert.True(t, res.IsEmpty())
}

func TestClone_UsesCloner(t *testing.T) {
	t.Parallel()

	orig := Ok[names, string](names{"Bob", "Alice"})
	dup := orig.Clone()
	dup.OkValue()[0] = "Eve"

	assert.Equal(t, names{"Bob", "Alice"}, orig.OkValue())
	assert.Equal(t, names{"Eve", "Alice"}, dup.OkValue())

	errDup := Err[int](names{"x"}).Clone()
	assert.Equal(t, names{"x"}, errDup.ErrValue())

	var empty Result[names, string]
	assert.True(t, empty.Clone().IsEmpty())
}

func TestClone_PlainCopy(t *testing.T) {
	t.Parallel()

	orig := Ok[int, string](12)
	dup := orig.Clone()
	orig.Release()

	assert.True(t, orig.IsEmpty())
	assert.Equal(t, 12, dup.OkValue())
}
