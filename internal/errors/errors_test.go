package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	t.Parallel()

	base := &codedError{code: "EMAIL_EXISTS"}
	wrapped := Wrap(base, "sign up")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "EMAIL_EXISTS", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	sentinel := New("not found")
	err := Wrapf(sentinel, "photo %s", "p1")

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, sentinel, Cause(err))
	assert.Equal(t, "photo p1: not found", err.Error())
}

func TestIsAny(t *testing.T) {
	t.Parallel()

	missing := New("missing")
	malformed := New("malformed")
	err := Wrap(malformed, "read upload")

	assert.True(t, IsAny(err, missing, malformed))
	assert.False(t, IsAny(err, missing))
	assert.False(t, IsAny(err))
}

func TestStackTrace(t *testing.T) {
	t.Parallel()

	assert.Empty(t, StackTrace(New("plain")))
	assert.Empty(t, StackTrace(nil))

	trace := StackTrace(Wrap(New("plain"), "context"))
	assert.Contains(t, trace, "TestStackTrace")
}
