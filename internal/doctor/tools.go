package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rileyhilliard/raspimon/internal/exec"
	"github.com/rileyhilliard/raspimon/internal/query"
)

// LookPathFunc finds a tool on PATH. Tests replace it.
type LookPathFunc func(tool string) (string, bool)

// installHints are package suggestions for the default tools on Raspberry Pi OS.
var installHints = map[string]string{
	"vcgencmd":     "Install it with: sudo apt install libraspberrypi-bin",
	"top":          "Install it with: sudo apt install procps",
	"df":           "Install it with: sudo apt install coreutils",
	"hostname":     "Install it with: sudo apt install hostname",
	"ip":           "Install it with: sudo apt install iproute2",
	"grep":         "Install it with: sudo apt install grep",
	"w":            "Install it with: sudo apt install procps",
	"raspi-config": "Install it with: sudo apt install raspi-config",
	"sudo":         "Install it with: apt install sudo (as root)",
}

// ToolCheck verifies the tool behind one menu option is on PATH.
type ToolCheck struct {
	Kind    query.Kind
	Command string
	// Optional downgrades a missing tool to a warning, for options that
	// have a fallback.
	Optional bool
	LookPath LookPathFunc
}

func (c *ToolCheck) Name() string     { return fmt.Sprintf("tool_%s", c.Kind) }
func (c *ToolCheck) Category() string { return CategoryTools }

func (c *ToolCheck) Run(ctx context.Context) CheckResult {
	if strings.TrimSpace(c.Command) == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: no command configured", c.Kind),
			Suggestion: fmt.Sprintf("Set commands.%s in the config file", c.Kind),
		}
	}

	tools := exec.ToolNames(c.Command)
	if len(tools) == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s: shell builtins only", c.Kind),
		}
	}

	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	// Every stage of a chain must resolve, not just the first
	var found, missing, hints []string
	for _, tool := range tools {
		path, ok := lookPath(tool)
		if ok {
			found = append(found, fmt.Sprintf("%s (%s)", tool, path))
			continue
		}
		missing = append(missing, tool)
		hint := installHints[tool]
		if hint == "" {
			hint = fmt.Sprintf("Install '%s' or change commands.%s in the config file", tool, c.Kind)
		}
		hints = append(hints, hint)
	}

	if len(missing) > 0 {
		status := StatusFail
		if c.Optional {
			status = StatusWarn
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     status,
			Message:    fmt.Sprintf("%s: %s not found", c.Kind, strings.Join(missing, ", ")),
			Suggestion: strings.Join(hints, "\n"),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: %s", c.Kind, strings.Join(found, ", ")),
	}
}

func (c *ToolCheck) Fix() error {
	return nil // System package installation is out of scope
}

// SensorCheck verifies the kernel exposes a thermal sensor for the
// temperature fallback.
type SensorCheck struct {
	Sensors query.SensorReader
}

func (c *SensorCheck) Name() string     { return "thermal_sensor" }
func (c *SensorCheck) Category() string { return CategoryTools }

func (c *SensorCheck) Run(ctx context.Context) CheckResult {
	readings, err := c.Sensors.Temperatures(ctx)
	r, ok := query.PickSoCReading(readings)
	if !ok {
		msg := "thermal sensors: none readable"
		if err != nil {
			msg = fmt.Sprintf("thermal sensors: %v", err)
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    msg,
			Suggestion: "Option a needs vcgencmd when no thermal zone is exposed under /sys/class/thermal",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("thermal sensor %s reads %.1f'C", r.Sensor, r.Celsius),
	}
}

func (c *SensorCheck) Fix() error {
	return nil
}

// GPIOCheck reports the GPIO option as unsupported.
type GPIOCheck struct{}

func (c *GPIOCheck) Name() string     { return "tool_gpio" }
func (c *GPIOCheck) Category() string { return CategoryTools }

func (c *GPIOCheck) Run(ctx context.Context) CheckResult {
	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    "gpio: " + query.FailureMessage(query.KindGPIO),
		Suggestion: "Option f always reports unavailable; pin states are not read",
	}
}

func (c *GPIOCheck) Fix() error {
	return nil
}

// SudoCheck verifies sudo exists for the configuration menu.
type SudoCheck struct {
	LookPath LookPathFunc
}

func (c *SudoCheck) Name() string     { return "sudo" }
func (c *SudoCheck) Category() string { return CategoryPrivileges }

func (c *SudoCheck) Run(ctx context.Context) CheckResult {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, ok := lookPath("sudo")
	if !ok {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "sudo not found",
			Suggestion: installHints["sudo"],
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("sudo (%s)", path),
	}
}

func (c *SudoCheck) Fix() error {
	return nil
}
