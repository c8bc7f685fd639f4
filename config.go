package tirocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the settings applied to the native options objects when a
// database is opened.
type Config struct {
	// CreateIfMissing creates the database when the path holds none.
	CreateIfMissing bool `json:"create_if_missing" yaml:"create_if_missing" toml:"create_if_missing"`

	// ErrorIfExists fails the open when a database already exists.
	ErrorIfExists bool `json:"error_if_exists" yaml:"error_if_exists" toml:"error_if_exists"`

	// ParanoidChecks makes the engine check data aggressively and stop early
	// on any corruption.
	ParanoidChecks bool `json:"paranoid_checks" yaml:"paranoid_checks" toml:"paranoid_checks"`

	// Parallelism sizes the background thread pools. Zero keeps the engine
	// default.
	Parallelism int `json:"parallelism,omitempty" yaml:"parallelism,omitempty" toml:"parallelism,omitempty" validate:"gte=0,lte=1024" jsonschema:"minimum=0,maximum=1024"`

	// MaxOpenFiles limits open table files. -1 keeps every file open.
	MaxOpenFiles int `json:"max_open_files" yaml:"max_open_files" toml:"max_open_files" validate:"gte=-1" jsonschema:"minimum=-1"`

	// WriteBufferSize is the memtable size in bytes.
	WriteBufferSize uint64 `json:"write_buffer_size" yaml:"write_buffer_size" toml:"write_buffer_size" validate:"gte=65536" jsonschema:"minimum=65536"`

	// ReadOnly opens the database without write access.
	ReadOnly bool `json:"read_only" yaml:"read_only" toml:"read_only"`

	// ErrorIfWALExists fails a read-only open when unflushed log files exist.
	ErrorIfWALExists bool `json:"error_if_wal_exists" yaml:"error_if_wal_exists" toml:"error_if_wal_exists"`

	// SyncWrites fsyncs the log before a write returns.
	SyncWrites bool `json:"sync_writes" yaml:"sync_writes" toml:"sync_writes"`

	// DisableWAL skips the write-ahead log.
	DisableWAL bool `json:"disable_wal" yaml:"disable_wal" toml:"disable_wal"`

	// VerifyChecksums verifies block checksums on every read.
	VerifyChecksums bool `json:"verify_checksums" yaml:"verify_checksums" toml:"verify_checksums"`

	// FillCache caches blocks read by point lookups.
	FillCache bool `json:"fill_cache" yaml:"fill_cache" toml:"fill_cache"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		ParanoidChecks:  true,
		MaxOpenFiles:    -1,
		WriteBufferSize: 64 << 20,
		VerifyChecksums: true,
		FillCache:       true,
	}
}

// Format names a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// LoadConfig reads, decodes and validates a configuration file. Keys absent
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format over DefaultConfig and
// validates the result.
func ParseConfig(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
