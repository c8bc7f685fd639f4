package ffi

/*
#include "crocksdb.h"
*/
import "C"

import "unsafe"

// Slice is the native (pointer, length) descriptor. It never owns the memory
// it references and must not outlive the call it is built for.
//
// A Go slice header is (pointer, length, capacity), so conversions copy the
// two fields instead of reinterpreting the header. The bytes are never copied.
type Slice C.rocksdb_Slice

// ToNative returns a descriptor over the same memory as b. The pointer is
// kept even when b is empty; only a nil b yields a nil pointer.
//
// The caller must keep b alive, and must not modify it in a conflicting way,
// for as long as the descriptor is in use. Nothing is checked.
func ToNative(b []byte) Slice {
	return Slice{
		data_: (*C.char)(unsafe.Pointer(unsafe.SliceData(b))),
		size_: C.size_t(len(b)),
	}
}

// StringToNative returns a descriptor over the bytes of s. The native side
// must treat them as read-only.
func StringToNative(s string) Slice {
	return Slice{
		data_: (*C.char)(unsafe.Pointer(unsafe.StringData(s))),
		size_: C.size_t(len(s)),
	}
}

// FromNative returns a Go view over the bytes referenced by s. A nil pointer
// yields nil; a non-nil pointer with size 0 yields an empty view at that
// pointer.
//
// The pointer and length are trusted as-is. The caller must guarantee the
// native memory outlives every use of the returned slice.
func FromNative(s Slice) []byte {
	if s.data_ == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(s.data_)), int(s.size_))
}

// Data returns the raw data pointer.
func (s Slice) Data() unsafe.Pointer {
	return unsafe.Pointer(s.data_)
}

// Len returns the descriptor length in bytes.
func (s Slice) Len() int {
	return int(s.size_)
}
