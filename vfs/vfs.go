// Package vfs provides a mounted filesystem session rooted at a host
// directory. Failures are reported as FatFs style result codes.
package vfs

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Result is a filesystem result code. The zero value is success and is never
// returned as an error.
type Result uint8

const (
	OK Result = iota
	DiskErr
	IntErr
	NotReady
	NoFile
	NoPath
	InvalidName
	Denied
	Exist
	InvalidObject
	WriteProtected
	InvalidDrive
	NotEnabled
	NoFilesystem
	MkfsAborted
	Timeout
	Locked
	NotEnoughCore
	TooManyOpenFiles
	InvalidParameter
)

var resultNames = [...]string{
	"FR_OK",
	"FR_DISK_ERR",
	"FR_INT_ERR",
	"FR_NOT_READY",
	"FR_NO_FILE",
	"FR_NO_PATH",
	"FR_INVALID_NAME",
	"FR_DENIED",
	"FR_EXIST",
	"FR_INVALID_OBJECT",
	"FR_WRITE_PROTECTED",
	"FR_INVALID_DRIVE",
	"FR_NOT_ENABLED",
	"FR_NO_FILESYSTEM",
	"FR_MKFS_ABORTED",
	"FR_TIMEOUT",
	"FR_LOCKED",
	"FR_NOT_ENOUGH_CORE",
	"FR_TOO_MANY_OPEN_FILES",
	"FR_INVALID_PARAMETER",
}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "FR_UNKNOWN"
}

func (r Result) Error() string { return r.String() }

// Session is a mounted filesystem. It must be unmounted when no longer used;
// calls on an unmounted session fail with NotEnabled.
type Session struct {
	root    string
	mounted bool
}

// Mount mounts the host directory root.
func Mount(root string) (*Session, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, InvalidDrive
	}
	fi, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return nil, NoFilesystem
	case err != nil:
		return nil, result(err)
	case !fi.IsDir():
		return nil, NoFilesystem
	}
	return &Session{root: abs, mounted: true}, nil
}

// Unmount releases the session.
func (s *Session) Unmount() error {
	if !s.mounted {
		return NotEnabled
	}
	s.mounted = false
	return nil
}

// Root returns the mounted host directory.
func (s *Session) Root() string { return s.root }

// Stat returns the size in bytes of the file at name.
func (s *Session) Stat(name string) (int64, error) {
	p, err := s.resolve(name)
	if err != nil {
		return 0, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return 0, result(err)
	}
	if fi.IsDir() {
		return 0, NoFile
	}
	return fi.Size(), nil
}

// Open opens the file at name for reading.
func (s *Session) Open(name string) (io.ReadCloser, error) {
	p, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, result(err)
	}
	return &file{f: f}, nil
}

func (s *Session) resolve(name string) (string, error) {
	if !s.mounted {
		return "", NotEnabled
	}
	if name == "" || strings.ContainsRune(name, 0) {
		return "", InvalidName
	}
	clean := path.Clean("/" + filepath.ToSlash(name))
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

type file struct {
	f *os.File
}

func (f *file) Read(p []byte) (int, error) {
	n, err := f.f.Read(p)
	if err != nil && err != io.EOF {
		return n, result(err)
	}
	return n, err
}

func (f *file) Close() error {
	if err := f.f.Close(); err != nil {
		return result(err)
	}
	return nil
}

func result(err error) Result {
	switch {
	case os.IsNotExist(err):
		return NoFile
	case os.IsPermission(err):
		return Denied
	case os.IsTimeout(err):
		return Timeout
	}
	return DiskErr
}
