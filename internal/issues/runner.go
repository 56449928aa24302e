package issues

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrToolMissing is returned when the issue CLI is not installed.
	ErrToolMissing = errors.New("issue CLI not found")
	// ErrTimedOut is returned when the issue CLI exceeds its time bound.
	ErrTimedOut = errors.New("issue CLI timed out")
)

// ToolFailure is returned when the issue CLI runs and exits non-zero.
type ToolFailure struct {
	Stderr string
	Err    error
}

func (e *ToolFailure) Error() string {
	if e.Stderr != "" {
		return strings.TrimSpace(e.Stderr)
	}
	return e.Err.Error()
}

func (e *ToolFailure) Unwrap() error { return e.Err }

// Runner runs an external command and returns its standard output.
// Implementations map failures onto ErrToolMissing, ErrTimedOut and
// *ToolFailure.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// waitDelay bounds how long Run waits for output pipes after the process
// is killed.
const waitDelay = 2 * time.Second

// ExecRunner runs commands with os/exec. The process is killed when ctx
// is done.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", ErrToolMissing, name)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "", fmt.Errorf("%w: %s", ErrTimedOut, name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", &ToolFailure{Stderr: stderr.String(), Err: err}
	}
	return "", &ToolFailure{Err: err}
}
