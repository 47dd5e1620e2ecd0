package query

import (
	"context"
	"io"

	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/exec"
	"github.com/rileyhilliard/raspimon/internal/logger"
)

// Kind names one facet of host state.
type Kind string

const (
	KindTemperature Kind = "temperature"
	KindCPU         Kind = "cpu"
	KindDisk        Kind = "disk"
	KindNetwork     Kind = "network"
	KindSessions    Kind = "sessions"
	KindGPIO        Kind = "gpio"
	KindConfig      Kind = "config"
)

// Kinds lists every kind in menu order.
var Kinds = []Kind{
	KindTemperature,
	KindCPU,
	KindDisk,
	KindNetwork,
	KindSessions,
	KindGPIO,
	KindConfig,
}

// failureMessages are what the console prints when a kind's tool fails.
var failureMessages = map[Kind]string{
	KindTemperature: "temperature sensor unavailable",
	KindCPU:         "CPU load unavailable",
	KindDisk:        "disk usage unavailable",
	KindNetwork:     "network information unavailable",
	KindSessions:    "session list unavailable",
	KindGPIO:        "GPIO status unavailable",
	KindConfig:      "configuration menu unavailable",
}

// FailureMessage returns the user-facing failure text for kind.
func FailureMessage(kind Kind) string {
	if msg, ok := failureMessages[kind]; ok {
		return msg
	}
	return string(kind) + " unavailable"
}

// Query reports one facet of host state. Run returns the tool's raw text,
// unmodified, or an ErrTool error when the tool is missing or fails.
type Query interface {
	Kind() Kind
	Run(ctx context.Context) (string, error)
}

// StreamingQuery is a Query that can write its report piece by piece as it
// is produced. Run still returns the whole report.
type StreamingQuery interface {
	Query
	Stream(ctx context.Context, w io.Writer) error
}

// Confirmer asks the user a yes/no question before a privileged action.
type Confirmer func(ctx context.Context, title string) (bool, error)

// Deps are the collaborators the queries are built from.
type Deps struct {
	Runner  exec.Runner
	Sensors SensorReader // nil disables the temperature fallback
	Confirm Confirmer    // nil skips confirmation before raspi-config
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Log     logger.Logger
}

// NewSet builds one Query per kind from cfg, in menu order.
func NewSet(cfg *config.Config, deps Deps) []Query {
	if deps.Log == nil {
		deps.Log = logger.Noop()
	}

	sensors := deps.Sensors
	if !cfg.Temperature.SensorFallback {
		sensors = nil
	}

	confirm := deps.Confirm
	if !cfg.RaspiConfig.Confirm {
		confirm = nil
	}

	return []Query{
		&TemperatureQuery{
			Command:  cfg.Commands.Temperature,
			Samples:  cfg.Temperature.Samples,
			Interval: cfg.Temperature.Interval,
			Runner:   deps.Runner,
			Sensors:  sensors,
			Log:      deps.Log,
		},
		NewCommandQuery(KindCPU, cfg.Commands.CPU, deps.Runner),
		NewCommandQuery(KindDisk, cfg.Commands.Disk, deps.Runner),
		NewCommandQuery(KindNetwork, cfg.Commands.Network, deps.Runner),
		NewCommandQuery(KindSessions, cfg.Commands.Sessions, deps.Runner),
		GPIOQuery{},
		&RaspiConfigQuery{
			Command: cfg.Commands.Config,
			Runner:  deps.Runner,
			Confirm: confirm,
			Stdin:   deps.Stdin,
			Stdout:  deps.Stdout,
			Stderr:  deps.Stderr,
		},
	}
}
