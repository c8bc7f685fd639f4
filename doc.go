// Package tirocks is a Go binding for RocksDB built on the crocksdb C
// surface.
//
// The ffi subpackage holds the raw bindings and the status and slice
// plumbing. This package wraps it in a DB handle that owns its native
// objects and reports failures as ordinary errors:
//
//	db, err := tirocks.Open(path, tirocks.WithCreateIfMissing(true))
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	if err := db.Put([]byte("k"), []byte("v")); err != nil {
//		return err
//	}
//	v, err := db.Get([]byte("k"))
//	if errors.Is(err, ffi.ErrNotFound) {
//		// missing
//	}
//
// Native failures wrap *ffi.Error, so errors.As recovers the code, sub-code
// and severity. Configuration can be loaded from YAML, TOML or JSON with
// LoadConfig and is validated before any native object is created.
package tirocks
