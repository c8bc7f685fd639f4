package ffi

/*
#include "crocksdb.h"
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"
)

// Status is the outcome record a native call writes through its status
// out-parameter.
//
// A Status exclusively owns its state buffer, which lives on the native heap.
// Release frees it; every path that obtains a Status must end in Release or
// ToError. A Status must not be copied once it holds state.
type Status struct {
	raw C.rocksdb_Status
}

// stateAllocator pairs allocation and release of state buffers. Both ends
// must use the native library's allocator.
type stateAllocator interface {
	alloc(msg []byte) unsafe.Pointer
	free(p unsafe.Pointer)
}

type nativeAllocator struct{}

func (nativeAllocator) alloc(msg []byte) unsafe.Pointer { return toCPlusArray(msg) }
func (nativeAllocator) free(p unsafe.Pointer)           { freeCPlusArray(p) }

var states stateAllocator = nativeAllocator{}

// NewOK returns an ok status with no state. Use it to initialize the
// out-parameter before a native call.
func NewOK() Status {
	return Status{raw: C.rocksdb_Status{
		code_:    C.uchar(CodeOK),
		subcode_: C.uchar(SubCodeNone),
		sev_:     C.uchar(SeverityNoError),
	}}
}

// NewError returns a failed status carrying msg.
//
// A non-empty msg is copied into a NUL-terminated buffer from the native
// allocator; an empty msg leaves the state absent. NewError panics when code
// is CodeOK.
func NewError(code Code, msg []byte) Status {
	if code == CodeOK {
		panic("ffi: NewError called with CodeOK")
	}
	st := Status{raw: C.rocksdb_Status{
		code_:    C.uchar(code),
		subcode_: C.uchar(SubCodeNone),
		sev_:     C.uchar(SeverityNoError),
	}}
	if len(msg) > 0 {
		st.raw.state_ = (*C.char)(states.alloc(msg))
	}
	return st
}

func (s *Status) c() *C.rocksdb_Status { return &s.raw }

// OK reports whether the code is CodeOK.
func (s *Status) OK() bool {
	return Code(s.raw.code_) == CodeOK
}

// Code returns the status code.
func (s *Status) Code() Code { return Code(s.raw.code_) }

// SubCode returns the sub-code refining Code.
func (s *Status) SubCode() SubCode { return SubCode(s.raw.subcode_) }

// SetSubCode sets the sub-code.
func (s *Status) SetSubCode(v SubCode) { s.raw.subcode_ = C.uchar(v) }

// Severity returns how badly the failure affects the database.
func (s *Status) Severity() Severity { return Severity(s.raw.sev_) }

// SetSeverity sets the severity.
func (s *Status) SetSeverity(v Severity) { s.raw.sev_ = C.uchar(v) }

// State returns the raw state bytes, which need not be valid text. The slice
// aliases native memory and is invalid after Release.
func (s *Status) State() ([]byte, bool) {
	if s.raw.state_ == nil {
		return nil, false
	}
	p := unsafe.Pointer(s.raw.state_)
	return FromNative(Slice{data_: s.raw.state_, size_: C.size_t(cStringLen(p))}), true
}

// Message returns the state as text. ok is false when no state is present.
// A present state that is not valid UTF-8 yields a *DecodeError.
func (s *Status) Message() (msg string, ok bool, err error) {
	state, ok := s.State()
	if !ok {
		return "", false, nil
	}
	if !utf8.Valid(state) {
		return "", true, newDecodeError(state)
	}
	return string(state), true, nil
}

// Release frees the state buffer if present and clears the field. Calling it
// again is a no-op.
func (s *Status) Release() {
	if s.raw.state_ == nil {
		return
	}
	p := unsafe.Pointer(s.raw.state_)
	s.raw.state_ = nil
	states.free(p)
}

// ToError converts a failed status into an *Error and releases s. It returns
// nil when s is ok, leaving s untouched.
func (s *Status) ToError() error {
	if s.OK() {
		return nil
	}
	e := &Error{
		Code:     s.Code(),
		SubCode:  s.SubCode(),
		Severity: s.Severity(),
	}
	if state, ok := s.State(); ok {
		e.State = append([]byte{}, state...)
	}
	s.Release()
	return e
}
