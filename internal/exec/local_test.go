package exec

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner() *LocalRunner {
	return &LocalRunner{Shell: "/bin/sh", Log: logger.Noop()}
}

func TestCapture_SimpleCommand(t *testing.T) {
	res, err := newTestRunner().Capture(context.Background(), "echo hello")

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", string(res.Stdout))
	assert.Empty(t, res.Stderr)
}

func TestCapture_CommandChain(t *testing.T) {
	res, err := newTestRunner().Capture(context.Background(), "echo one && echo two | tr 'o' '0'")

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "one\ntw0\n", string(res.Stdout))
}

func TestCapture_NonZeroExitCode(t *testing.T) {
	res, err := newTestRunner().Capture(context.Background(), "echo partial; exit 42")

	require.NoError(t, err) // command ran, just had non-zero exit
	assert.Equal(t, 42, res.ExitCode)
	assert.Equal(t, "partial\n", string(res.Stdout))
}

func TestCapture_StderrOutput(t *testing.T) {
	res, err := newTestRunner().Capture(context.Background(), "echo oops >&2")

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Empty(t, res.Stdout)
	assert.Equal(t, "oops\n", string(res.Stderr))
}

func TestCapture_CommandNotFound(t *testing.T) {
	res, err := newTestRunner().Capture(context.Background(), "this_command_does_not_exist_xyz123")

	require.NoError(t, err)
	assert.Equal(t, 127, res.ExitCode)

	name, found := IsCommandNotFound(string(res.Stderr), res.ExitCode)
	assert.True(t, found)
	if name != "" {
		assert.Equal(t, "this_command_does_not_exist_xyz123", name)
	}
}

func TestCapture_MissingShell(t *testing.T) {
	r := &LocalRunner{Shell: "/nonexistent/shell-xyz"}

	_, err := r.Capture(context.Background(), "echo hi")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
}

func TestCapture_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	res, err := newTestRunner().Capture(ctx, "sleep 5")

	require.NoError(t, err)
	assert.NotEqual(t, 0, res.ExitCode)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestCapture_LogsDebug(t *testing.T) {
	log := logger.NewBufferLogger()
	r := &LocalRunner{Shell: "/bin/sh", Log: log}

	_, err := r.Capture(context.Background(), "true")

	require.NoError(t, err)
	assert.True(t, log.Contains("capture: true"))
}

func TestAttach_UsesStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	input := strings.NewReader("hello from stdin")

	exitCode, err := newTestRunner().Attach(context.Background(), "cat", input, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "hello from stdin", stdout.String())
}

func TestAttach_NonZeroExit(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exitCode, err := newTestRunner().Attach(context.Background(), "echo denied >&2; exit 3", strings.NewReader(""), &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 3, exitCode)
	assert.Equal(t, "denied\n", stderr.String())
}

func TestNewLocalRunner_DefaultsLogger(t *testing.T) {
	r := NewLocalRunner(nil)
	require.NotNil(t, r.Log)
}

func TestLocalRunner_ShellFallback(t *testing.T) {
	t.Setenv("SHELL", "")
	r := &LocalRunner{}
	assert.Equal(t, "/bin/sh", r.shell())

	t.Setenv("SHELL", "/bin/bash")
	assert.Equal(t, "/bin/bash", r.shell())

	r.Shell = "/bin/dash"
	assert.Equal(t, "/bin/dash", r.shell())
}

func TestLookPath(t *testing.T) {
	_, found := LookPath("sh")
	assert.True(t, found)

	_, found = LookPath("this_command_does_not_exist_xyz123")
	assert.False(t, found)
}
