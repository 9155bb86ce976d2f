// Package shell runs external programs used by the generator.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Formatter = (*Formatter)(nil)

// Formatter implements ports.Formatter by piping source through a command,
// nixfmt by default.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format runs command with src on stdin and returns its stdout. command is
// split on whitespace; the first field names the program.
func (f *Formatter) Format(ctx context.Context, command string, src []byte) ([]byte, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, zerr.Wrap(domain.ErrFormatFailed, "formatter command is empty")
	}

	name := fields[0]
	executable, err := exec.LookPath(name)
	if err != nil {
		lookErr := zerr.Wrap(errors.Join(domain.ErrFormatFailed, err), "formatter not found")
		lookErr = zerr.With(lookErr, "command", name)
		return nil, zerr.With(lookErr, "hint", "install it or pass --no-format")
	}

	cmd := exec.CommandContext(ctx, executable, fields[1:]...) //nolint:gosec // user configured formatter
	cmd.Args[0] = name
	cmd.Stdin = bytes.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		runErr := zerr.Wrap(errors.Join(domain.ErrFormatFailed, err), "formatter exited with an error")
		runErr = zerr.With(runErr, "command", command)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			runErr = zerr.With(runErr, "exit_code", exitErr.ExitCode())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			runErr = zerr.With(runErr, "stderr", msg)
		}
		return nil, runErr
	}

	if stdout.Len() == 0 && len(src) > 0 {
		emptyErr := zerr.Wrap(domain.ErrFormatFailed, "formatter produced no output")
		return nil, zerr.With(emptyErr, "command", command)
	}

	return stdout.Bytes(), nil
}
