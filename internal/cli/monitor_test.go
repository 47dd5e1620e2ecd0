package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleSampler struct{}

func (idleSampler) Collect(context.Context) *monitor.Metrics {
	return &monitor.Metrics{Time: time.Now(), Hostname: "raspberrypi"}
}

func TestMonitorCommand_RejectsUnknownTheme(t *testing.T) {
	useConfig(t, echoConfig)

	err := monitorCommand(context.Background(), strings.NewReader(""), &bytes.Buffer{}, 0, "neon")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "monitor.theme")
}

func TestMonitorCommand_RejectsShortInterval(t *testing.T) {
	useConfig(t, echoConfig)

	err := monitorCommand(context.Background(), strings.NewReader(""), &bytes.Buffer{}, 10*time.Millisecond, "")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "monitor.interval")
}

func TestMonitorCommand_BadThemeInConfigFile(t *testing.T) {
	useConfig(t, "monitor:\n  theme: neon\n")

	err := monitorCommand(context.Background(), strings.NewReader(""), &bytes.Buffer{}, 0, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "monitor.theme")
}

func TestMonitorCommand_NeedsTerminal(t *testing.T) {
	useConfig(t, echoConfig)

	err := monitorCommand(context.Background(), strings.NewReader("q"), &bytes.Buffer{}, 0, "solar")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "needs a terminal")
}

func TestRunDashboard_QuitsOnKey(t *testing.T) {
	model := monitor.NewModel(idleSampler{}, monitor.Options{Interval: time.Hour})

	var out bytes.Buffer
	err := runDashboard(context.Background(), model, strings.NewReader("q"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "\x1b[?1049h", "enters the alternate screen")
}

func TestRunDashboard_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := monitor.NewModel(idleSampler{}, monitor.Options{Interval: time.Hour})
	err := runDashboard(ctx, model, strings.NewReader(""), &bytes.Buffer{})

	assert.NoError(t, err)
}

func TestMonitorCommand_Flags(t *testing.T) {
	assert.NotNil(t, monitorCmd.Flags().Lookup("interval"))
	assert.NotNil(t, monitorCmd.Flags().Lookup("theme"))
}
