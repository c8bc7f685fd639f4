// Command rocksprobe opens a database read-only and prints engine properties.
//
//	rocksprobe [-config file] [-schema] [-v] <path> [property...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tabokie/tirocks"
	"github.com/tabokie/tirocks/ffi"
)

var defaultProperties = []string{
	ffi.PropertyEstimateNumKeys,
	ffi.PropertyCurSizeAllMemTables,
	ffi.PropertyTotalSSTFilesSize,
	ffi.PropertyBackgroundErrors,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the probe and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rocksprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML, TOML or JSON config file")
	printSchema := fs.Bool("schema", false, "print the config JSON schema and exit")
	verbose := fs.Bool("v", false, "log native failures")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: rocksprobe [flags] <path> [property...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *printSchema {
		schema, err := tirocks.ConfigSchema()
		if err != nil {
			logger.Error("Failed to generate schema", "error", err)
			return 1
		}
		fmt.Fprintln(stdout, string(schema))
		return 0
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)
	properties := fs.Args()[1:]
	if len(properties) == 0 {
		properties = defaultProperties
	}

	cfg := tirocks.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = tirocks.LoadConfig(*configPath)
		if err != nil {
			logger.Error("Failed to load config", "error", err)
			return 1
		}
	}

	db, err := tirocks.OpenReadOnly(path, tirocks.WithConfig(cfg), tirocks.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to open database", "path", path, "error", err)
		return 1
	}
	defer db.Close()

	code := 0
	for _, name := range properties {
		value, err := db.Property(name)
		if errors.Is(err, ffi.ErrNotFound) {
			logger.Warn("Unknown property", "name", name)
			code = 1
			continue
		}
		if err != nil {
			logger.Error("Failed to read property", "name", name, "error", err)
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "%s: %s\n", name, value)
	}
	return code
}
