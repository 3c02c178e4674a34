package fsops

import "errors"

var (
	// ErrFilesystem matches every error returned by the materializer.
	ErrFilesystem = errors.New("filesystem operation failed")
	// ErrConflict means a file sits where a folder is expected or vice versa.
	ErrConflict = errors.New("path conflict")
)

// Error describes a failed filesystem operation.
type Error struct {
	Op   string
	Path string
	Err  error
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e == nil {
		return "(*fsops.Error)(nil)"
	}
	msg := e.Op + " " + e.Path
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFilesystem}
	}
	return []error{ErrFilesystem, e.Err}
}

func opError(op, path string, err error) error {
	return &Error{Op: op, Path: path, Err: err}
}
