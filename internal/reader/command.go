package reader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// exitWindowNotFound is the exit status a capture command uses to report
// that the game window does not exist.
const exitWindowNotFound = 2

// CommandSource captures window text by running an external command that
// prints the recognized text on stdout.
type CommandSource struct {
	Name string
	Args []string
}

// NewCommandSource creates a source from an argv slice.
func NewCommandSource(argv []string) *CommandSource {
	return &CommandSource{
		Name: argv[0],
		Args: argv[1:],
	}
}

// Capture runs the command and returns its stdout.
func (s *CommandSource) Capture(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, s.Name, s.Args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == exitWindowNotFound {
		return "", fmt.Errorf("%w: %s", ErrWindowNotFound, strings.TrimSpace(stderr.String()))
	}
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", s.Name, err)
	}
	return stdout.String(), nil
}
