package query

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/exec"
)

// SkippedMessage is returned when the user declines to open raspi-config.
const SkippedMessage = "configuration menu skipped\n"

// RaspiConfigQuery hands the terminal to the interactive raspi-config tool.
// The tool draws directly on the streams, so Run returns no text of its own
// on success.
type RaspiConfigQuery struct {
	Command string
	Runner  exec.Runner
	Confirm Confirmer // nil opens the tool without asking
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Kind implements Query.
func (q *RaspiConfigQuery) Kind() Kind { return KindConfig }

// Run implements Query.
func (q *RaspiConfigQuery) Run(ctx context.Context) (string, error) {
	if q.Confirm != nil {
		ok, err := q.Confirm(ctx, "Open the Raspberry Pi configuration menu? It runs with sudo.")
		if err != nil {
			return "", errors.NewToolFailure(FailureMessage(KindConfig), err, "")
		}
		if !ok {
			return SkippedMessage, nil
		}
	}

	// The console reads selections through a buffer; input typed ahead of
	// this selection stays with the console rather than reaching the tool.
	stdin, stdout, stderr := q.streams()

	// Keep a copy of stderr to tell a missing tool from a failed one
	var errBuf bytes.Buffer
	exitCode, err := q.Runner.Attach(ctx, q.Command, stdin, stdout, io.MultiWriter(stderr, &errBuf))
	if err != nil {
		return "", errors.NewToolFailure(FailureMessage(KindConfig), err,
			"Check that the shell can start, then try again.")
	}

	if cause := exec.HandleExecError(q.Command, errBuf.String(), exitCode); cause != nil {
		return "", errors.NewToolFailure(FailureMessage(KindConfig), cause,
			"raspi-config ships with Raspberry Pi OS and needs sudo rights.")
	}

	return "", nil
}

func (q *RaspiConfigQuery) streams() (io.Reader, io.Writer, io.Writer) {
	stdin, stdout, stderr := q.Stdin, q.Stdout, q.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdin, stdout, stderr
}
