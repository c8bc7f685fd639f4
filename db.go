package tirocks

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tabokie/tirocks/ffi"
)

// DB is an open database. It is safe for concurrent use; Close waits for
// in-flight calls to return.
type DB struct {
	mu     sync.RWMutex
	raw    *ffi.DB
	ropts  *ffi.ReadOptions
	wopts  *ffi.WriteOptions
	path   string
	cfg    Config
	logger *slog.Logger
}

// newOptions builds native options from cfg. The caller destroys them.
func newOptions(cfg Config) *ffi.Options {
	opts := ffi.NewOptions()
	opts.SetCreateIfMissing(cfg.CreateIfMissing)
	opts.SetErrorIfExists(cfg.ErrorIfExists)
	opts.SetParanoidChecks(cfg.ParanoidChecks)
	if cfg.Parallelism > 0 {
		opts.IncreaseParallelism(cfg.Parallelism)
	}
	opts.SetMaxOpenFiles(cfg.MaxOpenFiles)
	opts.SetWriteBufferSize(cfg.WriteBufferSize)
	return opts
}

func resolve(opts []Option) (openConfig, error) {
	c := defaultOpenConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := ValidateConfig(c.Config); err != nil {
		return c, err
	}
	return c, nil
}

// Open opens the database at path.
func Open(path string, opts ...Option) (*DB, error) {
	c, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	native := newOptions(c.Config)
	defer native.Destroy()

	var raw *ffi.DB
	if c.ReadOnly {
		raw, err = ffi.Call3(ffi.OpenForReadOnly, native, ffi.StringToNative(path), c.ErrorIfWALExists)
	} else {
		raw, err = ffi.Call2(ffi.Open, native, ffi.StringToNative(path))
	}
	if err != nil {
		logFailure(c.logger, "open", err)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	ropts := ffi.NewReadOptions()
	ropts.SetVerifyChecksums(c.VerifyChecksums)
	ropts.SetFillCache(c.FillCache)

	wopts := ffi.NewWriteOptions()
	wopts.SetSync(c.SyncWrites)
	wopts.DisableWAL(c.DisableWAL)

	c.logger.Info("database opened", "path", path, "read_only", c.ReadOnly)
	return &DB{
		raw:    raw,
		ropts:  ropts,
		wopts:  wopts,
		path:   path,
		cfg:    c.Config,
		logger: c.logger,
	}, nil
}

// OpenReadOnly is Open with WithReadOnly(true). The caller's opts are not
// modified.
func OpenReadOnly(path string, opts ...Option) (*DB, error) {
	return Open(path, append(opts[:len(opts):len(opts)], WithReadOnly(true))...)
}

// DestroyDB removes the database at path. The database must not be open.
func DestroyDB(path string, opts ...Option) error {
	c, err := resolve(opts)
	if err != nil {
		return err
	}

	native := newOptions(c.Config)
	defer native.Destroy()

	if err := ffi.Run2(ffi.DestroyDB, native, ffi.StringToNative(path)); err != nil {
		logFailure(c.logger, "destroy", err)
		return fmt.Errorf("destroy %s: %w", path, err)
	}
	c.logger.Info("database destroyed", "path", path)
	return nil
}

// Path returns the path the database was opened at.
func (db *DB) Path() string {
	return db.path
}

// Config returns the configuration the database was opened with.
func (db *DB) Config() Config {
	return db.cfg
}

// Close closes the database. Closing twice is a no-op.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.raw == nil {
		return nil
	}
	ffi.Close(db.raw)
	db.ropts.Destroy()
	db.wopts.Destroy()
	db.raw, db.ropts, db.wopts = nil, nil, nil

	db.logger.Info("database closed", "path", db.path)
	return nil
}

// Put stores value under key.
func (db *DB) Put(key, value []byte) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.raw == nil {
		return ErrClosed
	}
	if err := ffi.Run4(ffi.Put, db.raw, db.wopts, ffi.ToNative(key), ffi.ToNative(value)); err != nil {
		return db.fail("put", err)
	}
	return nil
}

// Get returns a copy of the value stored under key. A missing key yields an
// error matching ffi.ErrNotFound.
func (db *DB) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.raw == nil {
		return nil, ErrClosed
	}
	pinned, err := ffi.Call3(ffi.GetPinned, db.raw, db.ropts, ffi.ToNative(key))
	if err != nil {
		return nil, db.fail("get", err)
	}
	defer pinned.Destroy()

	return append([]byte{}, ffi.FromNative(pinned.Value())...), nil
}

// Has reports whether key is present.
func (db *DB) Has(key []byte) (bool, error) {
	_, err := db.Get(key)
	if errors.Is(err, ffi.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Delete removes key. Deleting a missing key is not an error.
func (db *DB) Delete(key []byte) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.raw == nil {
		return ErrClosed
	}
	if err := ffi.Run3(ffi.Delete, db.raw, db.wopts, ffi.ToNative(key)); err != nil {
		return db.fail("delete", err)
	}
	return nil
}

// Flush writes the memtable to disk and waits for it to finish.
func (db *DB) Flush() error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.raw == nil {
		return ErrClosed
	}
	if err := ffi.Run2(ffi.Flush, db.raw, true); err != nil {
		return db.fail("flush", err)
	}
	return nil
}

// Property returns the value of a named engine property, such as
// ffi.PropertyStats.
func (db *DB) Property(name string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.raw == nil {
		return "", ErrClosed
	}
	value, err := ffi.Call2(ffi.PropertyValue, db.raw, ffi.StringToNative(name))
	if err != nil {
		return "", db.fail("property "+name, err)
	}
	return string(value), nil
}

func (db *DB) fail(op string, err error) error {
	if !errors.Is(err, ffi.ErrNotFound) {
		logFailure(db.logger, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func logFailure(logger *slog.Logger, op string, err error) {
	var e *ffi.Error
	if !errors.As(err, &e) {
		logger.Debug("native call failed", "op", op, "error", err)
		return
	}
	logger.Debug("native call failed",
		"op", op,
		"code", e.Code.String(),
		"subcode", e.SubCode.String(),
		"severity", e.Severity.String(),
		"error", err,
	)
}
