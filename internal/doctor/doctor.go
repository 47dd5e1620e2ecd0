// Package doctor checks that the tools behind each menu option are present.
package doctor

import (
	"strings"

	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/query"
)

// Options control which checks NewChecks builds.
type Options struct {
	ConfigPath string
	Sensors    query.SensorReader // nil skips the thermal sensor check
	LookPath   LookPathFunc       // nil uses PATH
}

// NewChecks builds the checks for cfg: the config file, one check per
// configured tool, and the privilege check for the configuration menu.
func NewChecks(cfg *config.Config, opts Options) []Check {
	checks := []Check{
		&ConfigFileCheck{ConfigPath: opts.ConfigPath},
	}

	fallback := cfg.Temperature.SensorFallback && opts.Sensors != nil

	tools := []struct {
		kind    query.Kind
		command string
	}{
		{query.KindTemperature, cfg.Commands.Temperature},
		{query.KindCPU, cfg.Commands.CPU},
		{query.KindDisk, cfg.Commands.Disk},
		{query.KindNetwork, cfg.Commands.Network},
		{query.KindSessions, cfg.Commands.Sessions},
	}
	for _, t := range tools {
		checks = append(checks, &ToolCheck{
			Kind:     t.kind,
			Command:  t.command,
			Optional: t.kind == query.KindTemperature && fallback,
			LookPath: opts.LookPath,
		})
	}

	if fallback {
		checks = append(checks, &SensorCheck{Sensors: opts.Sensors})
	}

	checks = append(checks,
		&GPIOCheck{},
		&ToolCheck{Kind: query.KindConfig, Command: cfg.Commands.Config, LookPath: opts.LookPath},
	)

	if usesSudo(cfg.Commands.Config) {
		checks = append(checks, &SudoCheck{LookPath: opts.LookPath})
	}

	return checks
}

func usesSudo(cmd string) bool {
	for _, field := range strings.Fields(cmd) {
		if field == "sudo" {
			return true
		}
	}
	return false
}
