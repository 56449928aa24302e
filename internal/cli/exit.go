package cli

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess = 0
	// ExitFindings means the check ran and found failures or violations.
	ExitFindings = 1
	// ExitInvalid means the input was rejected or the check could not run.
	ExitInvalid = 2
)

// ExitError carries a process exit code through cobra without an extra
// error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFindings
}
