package osinfo

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// PlatformError is returned when the OS reports a failed query. Code is the
// OS error number, Message the OS-provided description.
type PlatformError struct {
	Code    int
	Message string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s (errno %d)", e.Message, e.Code)
}

// notImplemented is the message of gopsutil's internal
// common.ErrNotImplementedError, returned on unsupported platforms. The
// sentinel itself lives in an internal package, so it is matched by text.
const notImplemented = "not implemented yet"

// NewPlatformError builds a PlatformError carrying errno and its message.
func NewPlatformError(errno syscall.Errno) *PlatformError {
	return &PlatformError{Code: int(errno), Message: errno.Error()}
}

// toPlatformError converts an error from a host query into a PlatformError.
// The first errno found in the chain wins.
func toPlatformError(err error) *PlatformError {
	if err == nil {
		return nil
	}

	var pe *PlatformError
	if errors.As(err, &pe) {
		return pe
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &PlatformError{Code: int(errno), Message: errno.Error()}
	}

	if strings.Contains(err.Error(), notImplemented) {
		return NewPlatformError(syscall.ENOSYS)
	}

	return &PlatformError{Code: int(syscall.EIO), Message: err.Error()}
}
