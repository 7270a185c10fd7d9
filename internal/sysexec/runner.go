// Package sysexec wraps external command invocation behind a small interface
// so the switchers can be tested without touching real system utilities.
package sysexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
// Implementations block until the subprocess terminates; the switchers apply
// no timeout since every invocation is a trusted local configuration tool.
type Runner interface {
	Run(ctx context.Context, argv ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// New creates a runner backed by os/exec.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes argv[0] with the remaining arguments. On failure the returned
// error names the command and carries everything the process wrote, so the
// caller can log it and move on.
func (r *ExecRunner) Run(ctx context.Context, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := out.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return output, fmt.Errorf("%s exited with code %d: %s",
				strings.Join(argv, " "), exitErr.ExitCode(), strings.TrimSpace(output))
		}
		return output, fmt.Errorf("running %s: %w", strings.Join(argv, " "), err)
	}

	return output, nil
}
