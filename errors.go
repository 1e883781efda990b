package accelbench

import (
	"fmt"

	"github.com/gorgonia/accelbench/vfs"
	"github.com/pkg/errors"
)

// FilesystemError is a failure to stat, open or read a file.
type FilesystemError struct {
	Op     string
	Path   string
	Result vfs.Result
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Result)
}

func (e *FilesystemError) Cause() error  { return e.Result }
func (e *FilesystemError) Unwrap() error { return e.Result }

// AcceleratorError is any failure reported by the driver. Failures are not
// distinguished further.
type AcceleratorError struct {
	Op  string
	Err error
}

func (e *AcceleratorError) Error() string {
	return fmt.Sprintf("accelerator: %s: %v", e.Op, e.Err)
}

func (e *AcceleratorError) Cause() error  { return e.Err }
func (e *AcceleratorError) Unwrap() error { return e.Err }

func fsError(op, path string, err error) error {
	var res vfs.Result
	if !errors.As(err, &res) || res == vfs.OK {
		res = vfs.DiskErr
	}
	return &FilesystemError{Op: op, Path: path, Result: res}
}

func accelError(op string, err error) error {
	return &AcceleratorError{Op: op, Err: err}
}
