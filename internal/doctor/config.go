package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rileyhilliard/raspimon/internal/config"
)

// ConfigFileCheck verifies the config file, when there is one, loads and
// validates. No file is fine: the console runs on defaults.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
	// WritePath is where Fix writes the default config. Defaults to the
	// global config path.
	WritePath string
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run(ctx context.Context) CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    firstLine(err),
			Suggestion: "Check the --config path, or run 'raspimon init' to create a config",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusPass,
			Message:    "No config file, using built-in defaults",
			Suggestion: "Run 'raspimon init' to write the defaults to a file you can edit",
			Fixable:    true,
		}
	}

	if _, err := config.Load(path); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: %s", path, firstLine(err)),
			Suggestion: "Fix the configuration errors, or move the file away to use defaults",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", path),
	}
}

// Fix writes the default config when none exists. It never overwrites.
func (c *ConfigFileCheck) Fix() error {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path != "" {
		return nil
	}

	target := c.WritePath
	if target == "" {
		target = config.GlobalConfigPath()
	}
	return config.Write(target, config.DefaultConfig(), false)
}

// firstLine strips the "✗ " marker and keeps only the headline of a
// structured error.
func firstLine(err error) string {
	line, _, _ := strings.Cut(err.Error(), "\n")
	return strings.TrimPrefix(line, "✗ ")
}
