package vfs

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mount(t *testing.T) (*Session, string) {
	dir := t.TempDir()
	s, err := Mount(dir)
	require.NoError(t, err)
	t.Cleanup(func() { s.Unmount() })
	return s, dir
}

func TestStatOpenRead(t *testing.T) {
	s, dir := mount(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test_batch.bin"), []byte("hello"), 0644))

	size, err := s.Stat("test_batch.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	f, err := s.Open("/test_batch.bin")
	require.NoError(t, err)
	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))
	assert.NoError(t, f.Close())
}

func TestStatMissing(t *testing.T) {
	s, _ := mount(t)
	_, err := s.Stat("nope.bin")
	var res Result
	require.True(t, errors.As(err, &res))
	assert.Equal(t, NoFile, res)
	assert.Equal(t, "FR_NO_FILE", err.Error())
}

func TestStatDirectory(t *testing.T) {
	s, dir := mount(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "baseline"), 0755))
	_, err := s.Stat("baseline")
	assert.Equal(t, NoFile, err)
}

func TestResolveStaysInRoot(t *testing.T) {
	s, dir := mount(t)
	p, err := s.resolve("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root(), "etc", "passwd"), p)
	assert.Equal(t, dir, filepath.Dir(filepath.Dir(p)))

	_, err = s.resolve("")
	assert.Equal(t, InvalidName, err)
}

func TestUnmount(t *testing.T) {
	s, err := Mount(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Unmount())

	_, err = s.Stat("x")
	assert.Equal(t, NotEnabled, err)
	assert.Equal(t, NotEnabled, s.Unmount())
}

func TestMountMissing(t *testing.T) {
	_, err := Mount(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, NoFilesystem, err)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "FR_OK", OK.String())
	assert.Equal(t, "FR_NOT_ENOUGH_CORE", NotEnoughCore.String())
	assert.Equal(t, "FR_UNKNOWN", Result(200).String())
}
