package cli

import (
	"errors"

	"github.com/yaklabco/manify/internal/configloader"
	"github.com/yaklabco/manify/pkg/config"
	"github.com/yaklabco/manify/pkg/fsutil"
	"github.com/yaklabco/manify/pkg/manify"
	"github.com/yaklabco/manify/pkg/text"
)

// Exit codes for manify, following the sysexits convention.
const (
	// ExitSuccess indicates every page was generated.
	ExitSuccess = 0

	// ExitDataError indicates the input document is malformed.
	ExitDataError = 65

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 78

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps a failed run to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, manify.ErrMalformedInput),
		errors.Is(err, text.ErrBufferOverflow):
		return ExitDataError
	case errors.Is(err, configloader.ErrConfigNotFound),
		errors.Is(err, config.ErrBadSection),
		errors.Is(err, config.ErrBadPrefix),
		errors.Is(err, config.ErrNoName),
		errors.Is(err, manify.ErrBadPattern):
		return ExitConfigError
	case errors.Is(err, manify.ErrResourceFailure),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
