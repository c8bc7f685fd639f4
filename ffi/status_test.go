package ffi

import (
	"errors"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAllocator forwards to the native allocator and counts calls.
type countingAllocator struct {
	inner  stateAllocator
	allocs atomic.Int64
	frees  atomic.Int64
}

func (a *countingAllocator) alloc(msg []byte) unsafe.Pointer {
	a.allocs.Add(1)
	return a.inner.alloc(msg)
}

func (a *countingAllocator) free(p unsafe.Pointer) {
	a.frees.Add(1)
	a.inner.free(p)
}

// countAllocations installs a countingAllocator for the duration of the test.
func countAllocations(t *testing.T) *countingAllocator {
	t.Helper()
	prev := states
	a := &countingAllocator{inner: prev}
	states = a
	t.Cleanup(func() { states = prev })
	return a
}

func TestNewOK(t *testing.T) {
	st := NewOK()
	defer st.Release()

	assert.True(t, st.OK())
	assert.Equal(t, CodeOK, st.Code())
	assert.Equal(t, SubCodeNone, st.SubCode())
	assert.Equal(t, SeverityNoError, st.Severity())

	state, ok := st.State()
	assert.False(t, ok)
	assert.Nil(t, state)
}

func TestNewError(t *testing.T) {
	allocs := countAllocations(t)

	st := NewError(CodeInvalidArgument, []byte("x does not exist"))
	assert.False(t, st.OK())
	assert.Equal(t, CodeInvalidArgument, st.Code())
	assert.Equal(t, SubCodeNone, st.SubCode())
	assert.Equal(t, SeverityNoError, st.Severity())

	msg, ok, err := st.Message()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x does not exist", msg)

	state, ok := st.State()
	assert.True(t, ok)
	assert.Equal(t, []byte("x does not exist"), state)

	st.Release()
	assert.Equal(t, int64(1), allocs.allocs.Load())
	assert.Equal(t, int64(1), allocs.frees.Load())
}

func TestNewError_EmptyMessageAllocatesNothing(t *testing.T) {
	allocs := countAllocations(t)

	for name, msg := range map[string][]byte{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			st := NewError(CodeNotFound, msg)
			defer st.Release()

			assert.False(t, st.OK())
			_, ok := st.State()
			assert.False(t, ok)

			text, ok, err := st.Message()
			assert.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, text)
		})
	}

	assert.Zero(t, allocs.allocs.Load())
	assert.Zero(t, allocs.frees.Load())
}

func TestNewError_PanicsOnOK(t *testing.T) {
	allocs := countAllocations(t)

	assert.PanicsWithValue(t, "ffi: NewError called with CodeOK", func() {
		NewError(CodeOK, []byte("must not be built"))
	})
	assert.Zero(t, allocs.allocs.Load(), "nothing may be allocated before the check")
}

func TestRelease_ExactlyOnce(t *testing.T) {
	allocs := countAllocations(t)

	st := NewError(CodeCorruption, []byte("bad block"))
	st.Release()
	st.Release()

	assert.Equal(t, int64(1), allocs.frees.Load(), "state must be freed exactly once")
	_, ok := st.State()
	assert.False(t, ok, "state must be cleared after release")

	msg, ok, err := st.Message()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, msg)
	assert.Equal(t, CodeCorruption, st.Code(), "release keeps the code")
}

func TestRelease_WithoutState(t *testing.T) {
	allocs := countAllocations(t)

	st := NewOK()
	st.Release()
	st.Release()

	assert.Zero(t, allocs.frees.Load())
}

func TestMessage_InvalidUTF8(t *testing.T) {
	st := NewError(CodeCorruption, []byte{'o', 'k', 0xff, 'x'})
	defer st.Release()

	state, ok := st.State()
	require.True(t, ok, "raw access never fails")
	assert.Equal(t, []byte{'o', 'k', 0xff, 'x'}, state)

	_, ok, err := st.Message()
	assert.True(t, ok, "present but malformed is not absent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMessage))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Offset)
}

func TestStatusSetters(t *testing.T) {
	st := NewError(CodeBusy, []byte("locked"))
	defer st.Release()

	st.SetSubCode(SubCodeLockTimeout)
	st.SetSeverity(SeveritySoftError)

	assert.Equal(t, CodeBusy, st.Code())
	assert.Equal(t, SubCodeLockTimeout, st.SubCode())
	assert.Equal(t, SeveritySoftError, st.Severity())
}

func TestToError(t *testing.T) {
	allocs := countAllocations(t)

	st := NewError(CodeIOError, []byte("disk gone"))
	st.SetSubCode(SubCodeNoSpace)
	st.SetSeverity(SeverityHardError)

	err := st.ToError()
	require.Error(t, err)
	assert.Equal(t, int64(1), allocs.frees.Load(), "ToError consumes the status")
	_, ok := st.State()
	assert.False(t, ok)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeIOError, e.Code)
	assert.Equal(t, SubCodeNoSpace, e.SubCode)
	assert.Equal(t, SeverityHardError, e.Severity)
	assert.Equal(t, []byte("disk gone"), e.State)

	// A second release after ToError is still a no-op.
	st.Release()
	assert.Equal(t, int64(1), allocs.frees.Load())
}

func TestToError_OK(t *testing.T) {
	st := NewOK()
	assert.NoError(t, st.ToError())
}

func TestCodeStrings(t *testing.T) {
	assert.Equal(t, "OK", CodeOK.String())
	assert.Equal(t, "InvalidArgument", CodeInvalidArgument.String())
	assert.Equal(t, "ColumnFamilyDropped", CodeColumnFamilyDropped.String())
	assert.Equal(t, "Code(200)", Code(200).String())
	assert.Equal(t, "PathNotFound", SubCodePathNotFound.String())
	assert.Equal(t, "SubCode(99)", SubCode(99).String())
	assert.Equal(t, "FatalError", SeverityFatalError.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}
