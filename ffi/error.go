package ffi

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error is a failed native status copied into Go memory. It owns no native
// resources.
type Error struct {
	State    []byte
	Code     Code
	SubCode  SubCode
	Severity Severity
}

// Error formats the status the way rocksdb::Status::ToString does.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.prefix())
	if e.SubCode != SubCodeNone {
		b.WriteString(e.SubCode.message())
	}
	if e.State != nil {
		if e.SubCode != SubCodeNone {
			b.WriteString(": ")
		}
		b.Write(e.State)
	}
	return b.String()
}

// Message returns the state as text, with the same contract as
// Status.Message.
func (e *Error) Message() (msg string, ok bool, err error) {
	if e.State == nil {
		return "", false, nil
	}
	if !utf8.Valid(e.State) {
		return "", true, newDecodeError(e.State)
	}
	return string(e.State), true, nil
}

// Is reports whether target is an *Error with the same code. A target with a
// sub-code only matches that sub-code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code != t.Code {
		return false
	}
	return t.SubCode == SubCodeNone || e.SubCode == t.SubCode
}

// Sentinels for errors.Is.
var (
	ErrNotFound        = &Error{Code: CodeNotFound}
	ErrCorruption      = &Error{Code: CodeCorruption}
	ErrNotSupported    = &Error{Code: CodeNotSupported}
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument}
	ErrIOError         = &Error{Code: CodeIOError}
	ErrIncomplete      = &Error{Code: CodeIncomplete}
	ErrTimedOut        = &Error{Code: CodeTimedOut}
	ErrAborted         = &Error{Code: CodeAborted}
	ErrBusy            = &Error{Code: CodeBusy}
	ErrTryAgain        = &Error{Code: CodeTryAgain}
)

// CodeOf returns the code of the first *Error in err's chain. A nil err is
// CodeOK. ok is false when the chain holds no *Error.
func CodeOf(err error) (code Code, ok bool) {
	if err == nil {
		return CodeOK, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return CodeMaxCode, false
}

// ErrInvalidMessage is matched by every *DecodeError.
var ErrInvalidMessage = errors.New("status message is not valid UTF-8")

// DecodeError reports a state buffer that is present but not valid UTF-8.
type DecodeError struct {
	// Offset is the index of the first byte of the first invalid sequence.
	Offset int
}

func newDecodeError(state []byte) *DecodeError {
	off := 0
	for off < len(state) {
		r, size := utf8.DecodeRune(state[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		off += size
	}
	return &DecodeError{Offset: off}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: invalid byte at offset %d", ErrInvalidMessage, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return ErrInvalidMessage
}
