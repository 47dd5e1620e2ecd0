// Package testing provides test doubles for the exec package.
package testing

import (
	"context"
	"io"
	"sync"

	"github.com/rileyhilliard/raspimon/internal/exec"
)

// Response configures what the fake returns for one command line.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error // returned instead of a result, as if the shell couldn't start

	// ReadStdin makes Attach drain stdin into AttachCall.Stdin.
	ReadStdin bool
}

// AttachCall records a call to Attach.
type AttachCall struct {
	Cmd   string
	Stdin string // only filled in when the response sets ReadStdin
}

// FakeRunner simulates command execution without starting processes.
// Commands with no configured response exit 127 like a missing binary.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]Response

	// Call tracking
	CaptureCalls []string
	AttachCalls  []AttachCall
}

// NewFakeRunner creates a fake with no configured commands.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string]Response)}
}

// On configures the response for cmd.
func (f *FakeRunner) On(cmd string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmd] = resp
	return f
}

// OnOutput configures cmd to succeed with the given stdout.
func (f *FakeRunner) OnOutput(cmd, stdout string) *FakeRunner {
	return f.On(cmd, Response{Stdout: stdout})
}

func (f *FakeRunner) response(cmd string) Response {
	if resp, ok := f.responses[cmd]; ok {
		return resp
	}
	return Response{Stderr: "sh: 1: " + exec.ToolName(cmd) + ": not found\n", ExitCode: 127}
}

// Capture implements exec.Runner.
func (f *FakeRunner) Capture(ctx context.Context, cmd string) (*exec.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CaptureCalls = append(f.CaptureCalls, cmd)
	resp := f.response(cmd)
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &exec.Result{
		Stdout:   []byte(resp.Stdout),
		Stderr:   []byte(resp.Stderr),
		ExitCode: resp.ExitCode,
	}, nil
}

// Attach implements exec.Runner, writing the configured output to the streams.
func (f *FakeRunner) Attach(ctx context.Context, cmd string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	resp := f.response(cmd)
	call := AttachCall{Cmd: cmd}
	if resp.ReadStdin && stdin != nil {
		data, _ := io.ReadAll(stdin)
		call.Stdin = string(data)
	}
	f.AttachCalls = append(f.AttachCalls, call)
	if resp.Err != nil {
		return -1, resp.Err
	}
	if resp.Stdout != "" {
		_, _ = io.WriteString(stdout, resp.Stdout)
	}
	if resp.Stderr != "" {
		_, _ = io.WriteString(stderr, resp.Stderr)
	}
	return resp.ExitCode, nil
}

// Calls returns the total number of commands run.
func (f *FakeRunner) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.CaptureCalls) + len(f.AttachCalls)
}
