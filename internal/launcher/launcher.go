// Package launcher spawns the external authentication helper with a
// translated argument vector. It owns nothing about the arguments themselves;
// the vector is passed through verbatim, in order.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Launcher runs the helper executable. The zero value is not usable; use New.
type Launcher struct {
	// Path is the helper executable name or path, resolved against PATH by
	// the OS when not absolute.
	Path string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Launcher for the given helper executable, wired to the
// process's own stdio so interactive helper prompts reach the user.
func New(path string) *Launcher {
	return &Launcher{
		Path:   path,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the helper with args and waits for it to finish. The context
// cancels the helper if it is still running.
//
// A failure to start the process (helper missing, not executable) is reported
// with the underlying OS error. A helper that starts but exits non-zero is
// returned as-is (an *exec.ExitError); ExitCode extracts the code for the
// caller's own exit status.
func (l *Launcher) Run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, l.Path, args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return fmt.Errorf("failed to launch helper %q: %w", l.Path, err)
	}
	return nil
}

// ExitCode maps a Run error to a process exit status: the helper's own code
// when it ran and failed, 1 for anything else, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
