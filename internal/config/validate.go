package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/raspimon/internal/errors"
)

// validColors are the accepted output.color values.
var validColors = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but raspimon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade raspimon or lower the version field")
	}

	commands := []struct {
		key   string
		value string
	}{
		{"commands.temperature", cfg.Commands.Temperature},
		{"commands.cpu", cfg.Commands.CPU},
		{"commands.disk", cfg.Commands.Disk},
		{"commands.network", cfg.Commands.Network},
		{"commands.sessions", cfg.Commands.Sessions},
		{"commands.config", cfg.Commands.Config},
	}
	for _, c := range commands {
		if strings.TrimSpace(c.value) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' is empty", c.key),
				"Remove the key to use the default command, or set a command line")
		}
	}

	if cfg.Temperature.Samples < 1 || cfg.Temperature.Samples > MaxTemperatureSamples {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("temperature.samples must be between 1 and %d, got %d", MaxTemperatureSamples, cfg.Temperature.Samples),
			"Use 1 for a single reading, or 10 for a twenty second watch at the default interval")
	}

	if cfg.Temperature.Interval < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("temperature.interval can't be negative (%s)", cfg.Temperature.Interval),
			"Use a duration like 2s or 500ms")
	}

	if err := validateMonitor(cfg.Monitor); err != nil {
		return err
	}

	if !validColors[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color '%s' isn't recognized", cfg.Output.Color),
			"Use auto, always, or never")
	}

	return nil
}

func validateMonitor(m MonitorConfig) error {
	if m.Interval < MinMonitorInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("monitor.interval must be at least %s, got %s", MinMonitorInterval, m.Interval),
			"Use a duration like 1s or 500ms")
	}

	if m.History < MinMonitorHistory || m.History > MaxMonitorHistory {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("monitor.history must be between %d and %d, got %d", MinMonitorHistory, MaxMonitorHistory, m.History),
			"120 samples is two minutes of graph at the default interval")
	}

	if !IsMonitorTheme(m.Theme) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("monitor.theme '%s' isn't recognized", m.Theme),
			"Use one of: "+strings.Join(MonitorThemes, ", "))
	}

	if strings.TrimSpace(m.DiskPath) == "" {
		return errors.New(errors.ErrConfig,
			"'monitor.disk_path' is empty",
			"Remove the key to watch /, or set a mount point")
	}

	return nil
}

// IsMonitorTheme reports whether name is one of MonitorThemes.
func IsMonitorTheme(name string) bool {
	for _, t := range MonitorThemes {
		if t == name {
			return true
		}
	}
	return false
}
