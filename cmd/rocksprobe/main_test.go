package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabokie/tirocks"
	"github.com/tabokie/tirocks/internal/testutil"
)

func seedDB(t *testing.T) string {
	t.Helper()

	path := testutil.TempDBPath(t)
	db, err := tirocks.Open(path, tirocks.WithCreateIfMissing(true), tirocks.WithLogger(testutil.DiscardLogger()))
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	require.NoError(t, db.Flush())
	require.NoError(t, db.Close())
	return path
}

func TestRun_Schema(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-schema"}, &stdout, &stderr))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Contains(t, decoded, "properties")

	want, err := tirocks.ConfigSchema()
	require.NoError(t, err)
	testutil.AssertJSONEqual(t, string(want), stdout.String())
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage: rocksprobe")
}

func TestRun_Properties(t *testing.T) {
	path := seedDB(t)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{path, "rocksdb.estimate-num-keys"}, &stdout, &stderr), stderr.String())
	assert.Equal(t, "rocksdb.estimate-num-keys: 1\n", stdout.String())
}

func TestRun_DefaultProperties(t *testing.T) {
	path := seedDB(t)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{path}, &stdout, &stderr), stderr.String())
	for _, name := range defaultProperties {
		assert.Contains(t, stdout.String(), name+": ")
	}
}

func TestRun_UnknownProperty(t *testing.T) {
	path := seedDB(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{path, "rocksdb.no-such-property"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Unknown property")
}

func TestRun_Config(t *testing.T) {
	path := seedDB(t)
	cfgPath := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("write_buffer_size: 10\n"), 0o600))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-config", cfgPath, path}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Failed to load config")
}

func TestRun_MissingDatabase(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{testutil.TempDBPath(t)}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Failed to open database")
}
