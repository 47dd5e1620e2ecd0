package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfig points --config at a temp file with the given YAML body.
func useConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raspimon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	orig := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = orig })
	return path
}

// echoConfig replaces every tool with printf so the console can run anywhere.
const echoConfig = `commands:
  temperature: "printf 'temp=47.2C\n'"
  cpu: "printf 'load average: 0.08\n'"
  disk: "printf '/dev/root 29G\n'"
  network: "printf 'eth0 UP\n'"
  sessions: "printf 'pi pts/0\n'"
  config: "exit 0"
temperature:
  sensor_fallback: false
output:
  color: never
`

func TestConsoleCommand_TemperatureThenExit(t *testing.T) {
	useConfig(t, echoConfig)

	var out, errOut bytes.Buffer
	err := consoleCommand(context.Background(), strings.NewReader("a\nq\n"), &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "temp=47.2C"))
	assert.Contains(t, out.String(), "raspimon")
}

func TestConsoleCommand_BadInputThenCPU(t *testing.T) {
	useConfig(t, echoConfig)

	var out bytes.Buffer
	err := consoleCommand(context.Background(), strings.NewReader("z\nb\nq\n"), &out, &bytes.Buffer{})

	require.NoError(t, err)
	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "unrecognized selection"))
	assert.Equal(t, 1, strings.Count(text, "load average: 0.08"))
}

func TestConsoleCommand_MissingToolKeepsRunning(t *testing.T) {
	useConfig(t, `commands:
  disk: "raspimon-test-no-such-tool -h"
temperature:
  sensor_fallback: false
output:
  color: never
`)

	var out bytes.Buffer
	err := consoleCommand(context.Background(), strings.NewReader("c\nf\n"), &out, &bytes.Buffer{})

	require.NoError(t, err, "EOF exits cleanly")
	assert.Contains(t, out.String(), "disk usage unavailable")
	assert.Contains(t, out.String(), "GPIO status unavailable")
}

func TestConsoleCommand_ConfigMenuWithoutTerminal(t *testing.T) {
	useConfig(t, echoConfig)

	var out bytes.Buffer
	err := consoleCommand(context.Background(), strings.NewReader("g\nq\n"), &out, &bytes.Buffer{})

	require.NoError(t, err)
	assert.NotContains(t, out.String(), "configuration menu", "no prompt, no failure")
}

func TestConsoleCommand_DebugLogsToErrorStream(t *testing.T) {
	path := useConfig(t, echoConfig)
	t.Setenv("RASPIMON_DEBUG", "1")

	var out, errOut bytes.Buffer
	require.NoError(t, consoleCommand(context.Background(), strings.NewReader("b\nq\n"), &out, &errOut))

	assert.Contains(t, errOut.String(), "config: "+path)
	assert.Contains(t, errOut.String(), "dispatching cpu")
	assert.NotContains(t, out.String(), "dispatching")
}

func TestConsoleCommand_BadConfig(t *testing.T) {
	useConfig(t, "temperature:\n  samples: 500\n")

	err := consoleCommand(context.Background(), strings.NewReader("q\n"), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestConsoleCommand_MissingExplicitConfig(t *testing.T) {
	orig := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	defer func() { cfgFile = orig }()

	err := consoleCommand(context.Background(), strings.NewReader("q\n"), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestApplyColorMode_NoColorFlag(t *testing.T) {
	useConfig(t, echoConfig)
	orig := noColor
	noColor = true
	defer func() { noColor = orig }()

	cfg := loadConfigForDoctor()
	cfg.Output.Color = ui.ColorAlways
	applyColorMode(cfg, &bytes.Buffer{})

	assert.False(t, ui.ColorsEnabled())
}

func TestApplyColorMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := loadConfigForDoctor()
	cfg.Output.Color = ui.ColorAlways
	applyColorMode(cfg, &bytes.Buffer{})

	assert.False(t, ui.ColorsEnabled())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New(errors.ErrConfig, "bad config", "fix it"))
	assert.Equal(t, "✗ bad config\n\n  fix it\n", buf.String())

	buf.Reset()
	printError(&buf, fmt.Errorf(`unknown flag: --foo`))
	assert.Equal(t, "✗ unknown flag: --foo\n", buf.String())
}

func TestTerminalConfirm_NotATerminal(t *testing.T) {
	assert.Nil(t, terminalConfirm(strings.NewReader("y\n")))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	assert.Nil(t, terminalConfirm(f), "regular files are not terminals")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"version", "doctor", "init", "monitor", "completion"} {
		assert.True(t, names[want], "missing %s", want)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("no-color"))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"bogus"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
