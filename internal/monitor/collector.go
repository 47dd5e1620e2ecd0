package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/exec"
	"github.com/rileyhilliard/raspimon/internal/logger"
	"github.com/rileyhilliard/raspimon/internal/monitor/parsers"
	"github.com/rileyhilliard/raspimon/internal/query"
)

// Firmware commands sampled on every refresh.
const (
	GPUClockCommand  = "vcgencmd measure_clock core"
	ThrottledCommand = "vcgencmd get_throttled"
	VoltsCommand     = "vcgencmd measure_volts"
)

// GPUMaxClockHz is the core clock treated as 100% GPU load.
const GPUMaxClockHz = 600_000_000

// Collector takes samples of the local board.
type Collector struct {
	Stats   HostStats
	Runner  exec.Runner        // runs vcgencmd; nil skips firmware readings
	Sensors query.SensorReader // temperature fallback; nil disables it

	DiskPath    string
	TempCommand string
	Log         logger.Logger

	mu      sync.Mutex
	missing map[string]bool // commands that exited "not found" once
}

// NewCollector creates a collector reading gopsutil and running vcgencmd
// through runner, configured from cfg.
func NewCollector(cfg *config.Config, runner exec.Runner, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	c := &Collector{
		Stats:       PsutilStats{},
		Runner:      runner,
		DiskPath:    config.DefaultMonitorDiskPath,
		TempCommand: config.DefaultTemperatureCommand,
		Log:         log,
	}
	if cfg != nil {
		c.DiskPath = cfg.Monitor.DiskPath
		c.TempCommand = cfg.Commands.Temperature
		if cfg.Temperature.SensorFallback {
			c.Sensors = query.HostSensors{}
		}
	}
	return c
}

// Collect takes one sample. Sources that fail are listed in Metrics.Errors
// and leave their fields zero or nil; Collect itself never fails.
func (c *Collector) Collect(ctx context.Context) *Metrics {
	m := &Metrics{Time: time.Now()}

	fail := func(source string, err error) {
		c.logger().Debug("monitor: %s: %v", source, err)
		m.Errors = append(m.Errors, fmt.Sprintf("%s: %v", source, err))
	}

	if c.Stats != nil {
		var err error
		if m.CPU, err = c.Stats.CPU(ctx); err != nil {
			fail("cpu", err)
		}
		if m.Memory, err = c.Stats.Memory(ctx); err != nil {
			fail("memory", err)
		}
		if m.Disk, err = c.Stats.Disk(ctx, c.DiskPath); err != nil {
			fail("disk", err)
		}
		if m.Network, err = c.Stats.Network(ctx); err != nil {
			fail("network", err)
		}
		if m.IP, err = c.Stats.IP(ctx); err != nil {
			fail("ip", err)
		}
		if m.Hostname, m.Uptime, err = c.Stats.System(ctx); err != nil {
			fail("system", err)
		}
	}

	if t, err := c.temperature(ctx); err != nil {
		fail("temperature", err)
	} else {
		m.Temperature = t
	}

	if out, ok := c.firmware(ctx, GPUClockCommand); ok {
		if hz, err := parsers.ParseMeasureClock(out); err != nil {
			fail("gpu", err)
		} else {
			m.GPU = &GPUMetrics{CoreClockHz: hz, Percent: GPUPercent(hz)}
		}
	}

	if out, ok := c.firmware(ctx, ThrottledCommand); ok {
		if bits, err := parsers.ParseThrottled(out); err != nil {
			fail("power", err)
		} else {
			m.Power = &PowerMetrics{Throttled: bits, Flags: parsers.ThrottledFlags(bits)}
			if out, ok := c.firmware(ctx, VoltsCommand); ok {
				if v, err := parsers.ParseMeasureVolts(out); err == nil {
					m.Power.Volts = v
				}
			}
		}
	}

	return m
}

// GPUPercent maps a core clock onto 0-100 against GPUMaxClockHz.
func GPUPercent(hz uint64) float64 {
	pct := float64(hz) / GPUMaxClockHz * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// temperature reads the configured command, then the kernel sensors. Returns
// nil and no error when neither source exists.
func (c *Collector) temperature(ctx context.Context) (*TemperatureMetrics, error) {
	var cmdErr error
	if out, ok := c.firmware(ctx, c.TempCommand); ok {
		celsius, err := parsers.ParseMeasureTemp(out)
		if err == nil {
			return &TemperatureMetrics{Celsius: celsius, Source: exec.ToolName(c.TempCommand)}, nil
		}
		cmdErr = err
	}

	if c.Sensors != nil {
		readings, _ := c.Sensors.Temperatures(ctx)
		if r, ok := query.PickSoCReading(readings); ok {
			return &TemperatureMetrics{Celsius: r.Celsius, Source: r.Sensor}, nil
		}
	}
	return nil, cmdErr
}

// firmware runs a firmware command and returns its stdout. ok is false when
// the command failed; a command that isn't installed is not run again.
func (c *Collector) firmware(ctx context.Context, cmd string) (string, bool) {
	if c.Runner == nil || strings.TrimSpace(cmd) == "" || c.isMissing(cmd) {
		return "", false
	}

	res, err := c.Runner.Capture(ctx, cmd)
	if err != nil {
		c.logger().Debug("monitor: %q: %v", cmd, err)
		return "", false
	}
	if res.ExitCode != 0 {
		stderr := string(res.Stderr)
		_, notFound := exec.IsCommandNotFound(stderr, res.ExitCode)
		if !notFound {
			_, notFound = exec.IsDependencyNotFound(stderr)
		}
		if notFound {
			c.markMissing(cmd)
		}
		c.logger().Debug("monitor: %v", exec.HandleExecError(cmd, stderr, res.ExitCode))
		return "", false
	}
	return string(res.Stdout), true
}

func (c *Collector) isMissing(cmd string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.missing[cmd]
}

func (c *Collector) markMissing(cmd string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.missing == nil {
		c.missing = make(map[string]bool)
	}
	c.missing[cmd] = true
}

func (c *Collector) logger() logger.Logger {
	if c.Log == nil {
		return logger.Noop()
	}
	return c.Log
}
