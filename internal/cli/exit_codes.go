package cli

import (
	"errors"
	"os"

	"github.com/mgpai22/minutebook/internal/config"
	"github.com/mgpai22/minutebook/internal/subtitle"
)

// Exit codes follow Unix conventions: 0 success, 1 general, 2 usage.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2 // invalid flags or config
	ExitIO      = 3 // unreadable input, undecodable text, unwritable output
)

var ErrUsage = errors.New("invalid usage")

// ExitCodeFor maps an error returned by Execute to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, subtitle.ErrReadSource) ||
		errors.Is(err, subtitle.ErrInvalidEncoding) ||
		errors.Is(err, subtitle.ErrWriteOutput) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
