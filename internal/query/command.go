package query

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/exec"
)

// CommandQuery runs one shell command line and returns its stdout verbatim.
type CommandQuery struct {
	kind    Kind
	Command string
	Runner  exec.Runner
}

// NewCommandQuery creates a query for kind backed by cmd.
func NewCommandQuery(kind Kind, cmd string, runner exec.Runner) *CommandQuery {
	return &CommandQuery{kind: kind, Command: cmd, Runner: runner}
}

// Kind implements Query.
func (q *CommandQuery) Kind() Kind { return q.kind }

// Run implements Query.
func (q *CommandQuery) Run(ctx context.Context) (string, error) {
	return capture(ctx, q.Runner, q.kind, q.Command)
}

// capture runs cmd and maps every way it can fail to an ErrTool error.
func capture(ctx context.Context, runner exec.Runner, kind Kind, cmd string) (string, error) {
	tool := exec.ToolName(cmd)

	res, err := runner.Capture(ctx, cmd)
	if err != nil {
		return "", errors.NewToolFailure(FailureMessage(kind), err,
			"Check that the shell can start, then try again.")
	}

	if cause := exec.HandleExecError(cmd, string(res.Stderr), res.ExitCode); cause != nil {
		return "", errors.NewToolFailure(FailureMessage(kind), cause,
			fmt.Sprintf("Run 'raspimon doctor' to check that %s is installed.", tool))
	}

	return string(res.Stdout), nil
}
