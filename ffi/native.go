package ffi

/*
#cgo CXXFLAGS: -std=c++17
#cgo LDFLAGS: -lrocksdb -lstdc++ -lm -ldl -pthread
#include <stdlib.h>
#include <string.h>
#include "crocksdb.h"
*/
import "C"

import "unsafe"

// DB is an open native database handle.
type DB C.crocksdb_t

// Options is a native database options object.
type Options C.crocksdb_options_t

// ReadOptions is a native read options object.
type ReadOptions C.crocksdb_readoptions_t

// WriteOptions is a native write options object.
type WriteOptions C.crocksdb_writeoptions_t

// PinnableSlice holds a value returned by GetPinned. The bytes it references
// stay valid until Destroy.
type PinnableSlice C.crocksdb_pinnableslice_t

func boolToChar(b bool) C.uchar {
	if b {
		return 1
	}
	return 0
}

func (db *DB) c() *C.crocksdb_t                     { return (*C.crocksdb_t)(db) }
func (o *Options) c() *C.crocksdb_options_t         { return (*C.crocksdb_options_t)(o) }
func (o *ReadOptions) c() *C.crocksdb_readoptions_t { return (*C.crocksdb_readoptions_t)(o) }
func (o *WriteOptions) c() *C.crocksdb_writeoptions_t {
	return (*C.crocksdb_writeoptions_t)(o)
}
func (p *PinnableSlice) c() *C.crocksdb_pinnableslice_t {
	return (*C.crocksdb_pinnableslice_t)(p)
}

// toCPlusArray copies src into a NUL-terminated buffer owned by the native
// allocator.
func toCPlusArray(src []byte) unsafe.Pointer {
	return unsafe.Pointer(C.crocksdb_to_cplus_array(C.rocksdb_Slice(ToNative(src))))
}

// freeCPlusArray releases a buffer from toCPlusArray or from any native call
// that hands out a state or property buffer.
func freeCPlusArray(p unsafe.Pointer) {
	C.crocksdb_free_cplus_array((*C.char)(p))
}

// cStringLen returns the length of the NUL-terminated string at p.
func cStringLen(p unsafe.Pointer) int {
	return int(C.strlen((*C.char)(p)))
}

// NewOptions allocates native options with RocksDB defaults.
func NewOptions() *Options {
	return (*Options)(C.crocksdb_options_create())
}

// Destroy frees the options. o must not be used afterwards.
func (o *Options) Destroy() {
	C.crocksdb_options_destroy(o.c())
}

// SetCreateIfMissing creates the database on open when none exists.
func (o *Options) SetCreateIfMissing(v bool) {
	C.crocksdb_options_set_create_if_missing(o.c(), boolToChar(v))
}

// SetErrorIfExists fails the open when a database already exists.
func (o *Options) SetErrorIfExists(v bool) {
	C.crocksdb_options_set_error_if_exists(o.c(), boolToChar(v))
}

// SetParanoidChecks stops early on any detected corruption.
func (o *Options) SetParanoidChecks(v bool) {
	C.crocksdb_options_set_paranoid_checks(o.c(), boolToChar(v))
}

// IncreaseParallelism sizes the background thread pools for totalThreads.
func (o *Options) IncreaseParallelism(totalThreads int) {
	C.crocksdb_options_increase_parallelism(o.c(), C.int(totalThreads))
}

// SetMaxOpenFiles limits open table files; -1 keeps every file open.
func (o *Options) SetMaxOpenFiles(n int) {
	C.crocksdb_options_set_max_open_files(o.c(), C.int(n))
}

// SetWriteBufferSize sets the memtable size in bytes.
func (o *Options) SetWriteBufferSize(size uint64) {
	C.crocksdb_options_set_write_buffer_size(o.c(), C.size_t(size))
}

// NewReadOptions allocates native read options with RocksDB defaults.
func NewReadOptions() *ReadOptions {
	return (*ReadOptions)(C.crocksdb_readoptions_create())
}

// Destroy frees the read options. o must not be used afterwards.
func (o *ReadOptions) Destroy() {
	C.crocksdb_readoptions_destroy(o.c())
}

// SetVerifyChecksums verifies block checksums on every read.
func (o *ReadOptions) SetVerifyChecksums(v bool) {
	C.crocksdb_readoptions_set_verify_checksums(o.c(), boolToChar(v))
}

// SetFillCache caches blocks read by point lookups.
func (o *ReadOptions) SetFillCache(v bool) {
	C.crocksdb_readoptions_set_fill_cache(o.c(), boolToChar(v))
}

// NewWriteOptions allocates native write options with RocksDB defaults.
func NewWriteOptions() *WriteOptions {
	return (*WriteOptions)(C.crocksdb_writeoptions_create())
}

// Destroy frees the write options. o must not be used afterwards.
func (o *WriteOptions) Destroy() {
	C.crocksdb_writeoptions_destroy(o.c())
}

// SetSync fsyncs the log before a write returns.
func (o *WriteOptions) SetSync(v bool) {
	C.crocksdb_writeoptions_set_sync(o.c(), boolToChar(v))
}

// DisableWAL skips the write-ahead log.
func (o *WriteOptions) DisableWAL(v bool) {
	C.crocksdb_writeoptions_disable_wal(o.c(), boolToChar(v))
}

// The functions below take their status out-parameter last so they can be
// passed directly to Call* and Run*.

// Open opens the database at path. The result is nil unless st is ok.
func Open(opts *Options, path Slice, st *Status) *DB {
	return (*DB)(C.crocksdb_open(opts.c(), C.rocksdb_Slice(path), st.c()))
}

// OpenForReadOnly opens the database at path without write access.
func OpenForReadOnly(opts *Options, path Slice, errorIfWALExists bool, st *Status) *DB {
	return (*DB)(C.crocksdb_open_for_read_only(opts.c(), C.rocksdb_Slice(path), boolToChar(errorIfWALExists), st.c()))
}

// Close closes db and frees the handle. db must not be used afterwards.
func Close(db *DB) {
	C.crocksdb_close(db.c())
}

// DestroyDB removes the database files at path.
func DestroyDB(opts *Options, path Slice, st *Status) {
	C.crocksdb_destroy_db(opts.c(), C.rocksdb_Slice(path), st.c())
}

// Put stores value under key.
func Put(db *DB, opts *WriteOptions, key, value Slice, st *Status) {
	C.crocksdb_put(db.c(), opts.c(), C.rocksdb_Slice(key), C.rocksdb_Slice(value), st.c())
}

// Delete removes key. A missing key is not an error.
func Delete(db *DB, opts *WriteOptions, key Slice, st *Status) {
	C.crocksdb_delete(db.c(), opts.c(), C.rocksdb_Slice(key), st.c())
}

// GetPinned looks up key. A missing key sets a NotFound status and returns nil.
func GetPinned(db *DB, opts *ReadOptions, key Slice, st *Status) *PinnableSlice {
	return (*PinnableSlice)(C.crocksdb_get_pinned(db.c(), opts.c(), C.rocksdb_Slice(key), st.c()))
}

// Value returns the pinned bytes. The descriptor is valid until Destroy.
func (p *PinnableSlice) Value() Slice {
	return Slice(C.crocksdb_pinnableslice_value(p.c()))
}

// Destroy frees the pinned value. Views from Value become invalid.
func (p *PinnableSlice) Destroy() {
	C.crocksdb_pinnableslice_destroy(p.c())
}

// Flush flushes the memtable, blocking until done when wait is set.
func Flush(db *DB, wait bool, st *Status) {
	C.crocksdb_flush(db.c(), boolToChar(wait), st.c())
}

// PropertyValue returns a copy of the named property. An unknown name sets a
// NotFound status.
func PropertyValue(db *DB, name Slice, st *Status) []byte {
	p := unsafe.Pointer(C.crocksdb_property_value(db.c(), C.rocksdb_Slice(name), st.c()))
	if p == nil {
		return nil
	}
	defer freeCPlusArray(p)
	return append([]byte{}, FromNative(Slice{data_: (*C.char)(p), size_: C.size_t(cStringLen(p))})...)
}
