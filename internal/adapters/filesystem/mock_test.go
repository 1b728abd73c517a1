package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFileSystem_RenameMovesSubtree(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/dev/Apps/Weather/Package.swift", nil)
	mfs.AddDir("/dev/Tools")

	require.NoError(t, mfs.Rename("/dev/Apps/Weather", "/dev/Tools/Weather"))

	assert.True(t, mfs.IsDir("/dev/Tools/Weather"))
	assert.True(t, mfs.Exists("/dev/Tools/Weather/Package.swift"))
	assert.False(t, mfs.Exists("/dev/Apps/Weather"))
	assert.False(t, mfs.Exists("/dev/Apps/Weather/Package.swift"))
}

func TestMockFileSystem_RenameErrors(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddDir("/dev/a/Foo")
	mfs.AddDir("/dev/b/Foo")

	err := mfs.Rename("/dev/a/Foo", "/dev/b/Foo")
	assert.True(t, errors.Is(err, fs.ErrExist))

	err = mfs.Rename("/dev/a/Bar", "/dev/b/Bar")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = mfs.Rename("/dev/a/Foo", "/dev/missing/Foo")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMockFileSystem_RemoveAll(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/dev/Apps/Weather/Package.swift", nil)
	mfs.AddDir("/dev/Apps/WeatherKit")

	require.NoError(t, mfs.RemoveAll("/dev/Apps/Weather"))

	assert.False(t, mfs.Exists("/dev/Apps/Weather/Package.swift"))
	assert.True(t, mfs.IsDir("/dev/Apps/WeatherKit"))
}

func TestMockFileSystem_FailOn(t *testing.T) {
	mfs := NewMockFileSystem()
	boom := errors.New("boom")
	mfs.FailOn("MkdirAll", boom)

	assert.ErrorIs(t, mfs.MkdirAll("/dev/x", 0o755), boom)
	assert.False(t, mfs.Exists("/dev/x"))
}
