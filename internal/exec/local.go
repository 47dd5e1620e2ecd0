package exec

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/logger"
)

// pipeWaitDelay bounds how long Capture waits for output pipes to close once
// the context is done.
const pipeWaitDelay = time.Second

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner executes shell command lines on the local board.
// A non-zero exit is reported through ExitCode, not as an error; an error
// means the command could not be started at all.
type Runner interface {
	// Capture runs cmd and collects stdout and stderr.
	Capture(ctx context.Context, cmd string) (*Result, error)

	// Attach runs cmd with the given streams, for interactive tools that need
	// the terminal. It blocks until the command exits.
	Attach(ctx context.Context, cmd string, stdin io.Reader, stdout, stderr io.Writer) (int, error)
}

// LocalRunner runs commands through the user's shell.
type LocalRunner struct {
	// Shell overrides $SHELL. Defaults to /bin/sh when both are empty.
	Shell string
	Log   logger.Logger
}

// NewLocalRunner creates a runner using the user's shell.
func NewLocalRunner(log logger.Logger) *LocalRunner {
	if log == nil {
		log = logger.Noop()
	}
	return &LocalRunner{Log: log}
}

func (r *LocalRunner) shell() string {
	if r.Shell != "" {
		return r.Shell
	}
	// Use shell to interpret the command (handles pipes, &&, redirects)
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

func (r *LocalRunner) logger() logger.Logger {
	if r.Log == nil {
		return logger.Noop()
	}
	return r.Log
}

// Capture runs cmd and returns its captured output and exit code.
func (r *LocalRunner) Capture(ctx context.Context, cmd string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	command := exec.CommandContext(ctx, r.shell(), "-c", cmd)
	// Children of the shell may keep the pipes open after a cancel
	command.WaitDelay = pipeWaitDelay
	command.Stdout = &stdout
	command.Stderr = &stderr

	r.logger().Debug("capture: %s", cmd)

	exitCode, err := wait(command)
	if err != nil {
		return nil, err
	}

	r.logger().Debug("capture: %s exited %d (%d bytes)", cmd, exitCode, stdout.Len())

	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: exitCode,
	}, nil
}

// Attach runs cmd connected to the given streams and returns its exit code.
func (r *LocalRunner) Attach(ctx context.Context, cmd string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	command := exec.CommandContext(ctx, r.shell(), "-c", cmd)
	command.Stdin = stdin
	command.Stdout = stdout
	command.Stderr = stderr

	r.logger().Debug("attach: %s", cmd)

	return wait(command)
}

// wait runs the prepared command. Exit errors become exit codes; anything
// else means the shell itself could not run.
func wait(command *exec.Cmd) (int, error) {
	runErr := command.Run()
	if runErr == nil {
		return 0, nil
	}

	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}

	return -1, errors.WrapWithCode(runErr, errors.ErrExec,
		"Couldn't run the command locally",
		"Make sure the shell exists and is executable.")
}

// LookPath reports where a tool lives on PATH.
func LookPath(tool string) (string, bool) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", false
	}
	return path, true
}
