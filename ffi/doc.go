// Package ffi is the boundary between Go and the native crocksdb surface.
//
// All cgo lives here. The package provides three things:
//
//   - a slice bridge (ToNative, StringToNative, FromNative) converting Go byte
//     slices to native (pointer, length) descriptors and back without copying
//     the bytes;
//   - Status, an owned wrapper around the native status record whose state
//     buffer is allocated and freed by the native allocator;
//   - Call and Run, which wrap every native function taking a status
//     out-parameter and turn its outcome into a (value, error) pair.
//
// The raw entry points (Open, Put, GetPinned, ...) take their *Status last so
// they plug straight into Call and Run:
//
//	db, err := ffi.Call2(ffi.Open, opts, ffi.StringToNative(path))
//	if err != nil {
//		return err
//	}
//
// # Safety
//
// Slice descriptors do not own memory and must not outlive the call they are
// built for. A Status must be released exactly once; Call and Run do this for
// you. Nothing in this package imposes locking: concurrent use is safe exactly
// as far as the native entry points are.
package ffi
