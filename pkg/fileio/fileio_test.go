package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")
	want := []byte{1, 2, 3, 4, 5}

	require.NoError(t, WriteAll(path, want))
	got, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadAllMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadAll(filepath.Join(dir, "missing.bin"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReadAllDirectoryIsIOError(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadAll(dir)
	require.ErrorIs(t, err, ErrIO)
}
