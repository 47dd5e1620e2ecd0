package doctor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rileyhilliard/raspimon/internal/config"
	"github.com/rileyhilliard/raspimon/internal/query"
)

// fakePath reports the listed tools as installed under /usr/bin.
func fakePath(installed ...string) LookPathFunc {
	set := make(map[string]bool, len(installed))
	for _, tool := range installed {
		set[tool] = true
	}
	return func(tool string) (string, bool) {
		if set[tool] {
			return "/usr/bin/" + tool, true
		}
		return "", false
	}
}

type fakeSensors struct {
	readings []query.SensorReading
	err      error
}

func (f *fakeSensors) Temperatures(ctx context.Context) ([]query.SensorReading, error) {
	return f.readings, f.err
}

func TestToolCheck(t *testing.T) {
	tests := []struct {
		name       string
		check      ToolCheck
		wantStatus CheckStatus
		wantMsg    string
	}{
		{
			name:       "installed",
			check:      ToolCheck{Kind: query.KindDisk, Command: "df -h", LookPath: fakePath("df")},
			wantStatus: StatusPass,
			wantMsg:    "disk: df (/usr/bin/df)",
		},
		{
			name:       "missing",
			check:      ToolCheck{Kind: query.KindCPU, Command: "top -b -n 1 -i", LookPath: fakePath()},
			wantStatus: StatusFail,
			wantMsg:    "cpu: top not found",
		},
		{
			name:       "missing but optional",
			check:      ToolCheck{Kind: query.KindTemperature, Command: "vcgencmd measure_temp", Optional: true, LookPath: fakePath()},
			wantStatus: StatusWarn,
			wantMsg:    "temperature: vcgencmd not found",
		},
		{
			name:       "skips sudo",
			check:      ToolCheck{Kind: query.KindConfig, Command: "sudo raspi-config", LookPath: fakePath("raspi-config")},
			wantStatus: StatusPass,
			wantMsg:    "config: raspi-config",
		},
		{
			name:       "every tool of a chain",
			check:      ToolCheck{Kind: query.KindNetwork, Command: config.DefaultNetworkCommand, LookPath: fakePath("hostname", "ip", "grep")},
			wantStatus: StatusPass,
			wantMsg:    "network: hostname (/usr/bin/hostname), ip (/usr/bin/ip), grep (/usr/bin/grep)",
		},
		{
			name:       "later tool of a chain missing",
			check:      ToolCheck{Kind: query.KindNetwork, Command: config.DefaultNetworkCommand, LookPath: fakePath("hostname", "grep")},
			wantStatus: StatusFail,
			wantMsg:    "network: ip not found",
		},
		{
			name:       "builtins only",
			check:      ToolCheck{Kind: query.KindConfig, Command: "exit 0", LookPath: fakePath()},
			wantStatus: StatusPass,
			wantMsg:    "config: shell builtins only",
		},
		{
			name:       "empty command",
			check:      ToolCheck{Kind: query.KindSessions, Command: "  ", LookPath: fakePath()},
			wantStatus: StatusFail,
			wantMsg:    "no command configured",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.check.Run(context.Background())
			if result.Status != tc.wantStatus {
				t.Errorf("status = %v, want %v (%s)", result.Status, tc.wantStatus, result.Message)
			}
			if !strings.Contains(result.Message, tc.wantMsg) {
				t.Errorf("message %q does not contain %q", result.Message, tc.wantMsg)
			}
			if result.Status != StatusPass && result.Suggestion == "" {
				t.Errorf("expected a suggestion for a failed check")
			}
		})
	}
}

func TestToolCheck_InstallHint(t *testing.T) {
	check := &ToolCheck{Kind: query.KindTemperature, Command: "vcgencmd measure_temp", LookPath: fakePath()}
	result := check.Run(context.Background())

	if !strings.Contains(result.Suggestion, "libraspberrypi-bin") {
		t.Errorf("expected apt hint, got %q", result.Suggestion)
	}
	if check.Name() != "tool_temperature" {
		t.Errorf("unexpected name %q", check.Name())
	}
	if check.Category() != CategoryTools {
		t.Errorf("unexpected category %q", check.Category())
	}
}

func TestToolCheck_ReportsEveryMissingTool(t *testing.T) {
	check := &ToolCheck{Kind: query.KindNetwork, Command: config.DefaultNetworkCommand, LookPath: fakePath("hostname")}
	result := check.Run(context.Background())

	if result.Status != StatusFail {
		t.Fatalf("expected fail, got %v: %s", result.Status, result.Message)
	}
	if !strings.Contains(result.Message, "ip, grep not found") {
		t.Errorf("unexpected message %q", result.Message)
	}
	if !strings.Contains(result.Suggestion, "iproute2") || !strings.Contains(result.Suggestion, "apt install grep") {
		t.Errorf("expected both install hints, got %q", result.Suggestion)
	}
}

func TestSensorCheck(t *testing.T) {
	t.Run("reading available", func(t *testing.T) {
		check := &SensorCheck{Sensors: &fakeSensors{readings: []query.SensorReading{{Sensor: "cpu_thermal", Celsius: 45}}}}
		result := check.Run(context.Background())

		if result.Status != StatusPass {
			t.Errorf("expected pass, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "cpu_thermal reads 45.0'C") {
			t.Errorf("unexpected message %q", result.Message)
		}
	})

	t.Run("no sensors", func(t *testing.T) {
		check := &SensorCheck{Sensors: &fakeSensors{err: fmt.Errorf("not implemented yet")}}
		result := check.Run(context.Background())

		if result.Status != StatusWarn {
			t.Errorf("expected warn, got %v", result.Status)
		}
		if !strings.Contains(result.Message, "not implemented yet") {
			t.Errorf("expected the sensor error in %q", result.Message)
		}
	})
}

func TestGPIOCheck(t *testing.T) {
	result := (&GPIOCheck{}).Run(context.Background())

	if result.Status != StatusWarn {
		t.Errorf("expected warn, got %v", result.Status)
	}
	if !strings.Contains(result.Message, "GPIO status unavailable") {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestSudoCheck(t *testing.T) {
	if got := (&SudoCheck{LookPath: fakePath("sudo")}).Run(context.Background()); got.Status != StatusPass {
		t.Errorf("expected pass, got %v", got.Status)
	}
	if got := (&SudoCheck{LookPath: fakePath()}).Run(context.Background()); got.Status != StatusFail {
		t.Errorf("expected fail, got %v", got.Status)
	}
}

func checkNames(checks []Check) []string {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name()
	}
	return names
}

func TestNewChecks(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		checks := NewChecks(config.DefaultConfig(), Options{Sensors: &fakeSensors{}})
		got := strings.Join(checkNames(checks), ",")
		want := "config_file,tool_temperature,tool_cpu,tool_disk,tool_network,tool_sessions,thermal_sensor,tool_gpio,tool_config,sudo"
		if got != want {
			t.Errorf("checks = %s\nwant %s", got, want)
		}

		temp := checks[1].(*ToolCheck)
		if !temp.Optional {
			t.Errorf("temperature should be optional with the sensor fallback")
		}
	})

	t.Run("fallback disabled", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Temperature.SensorFallback = false

		checks := NewChecks(cfg, Options{Sensors: &fakeSensors{}})
		for _, name := range checkNames(checks) {
			if name == "thermal_sensor" {
				t.Errorf("sensor check should be skipped")
			}
		}
		if checks[1].(*ToolCheck).Optional {
			t.Errorf("temperature should be required without the fallback")
		}
	})

	t.Run("config command without sudo", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Commands.Config = "raspi-config"

		names := checkNames(NewChecks(cfg, Options{}))
		if names[len(names)-1] == "sudo" {
			t.Errorf("sudo check should be skipped, got %v", names)
		}
	})

	t.Run("network tool missing", func(t *testing.T) {
		path := fakePath("vcgencmd", "top", "df", "hostname", "grep", "w", "raspi-config", "sudo")
		results := RunAll(context.Background(), NewChecks(config.DefaultConfig(), Options{LookPath: path}))

		for _, r := range results {
			if r.Name == "tool_network" {
				if r.Status != StatusFail || !strings.Contains(r.Message, "ip not found") {
					t.Errorf("tool_network = %v %q, want a failure naming ip", r.Status, r.Message)
				}
				return
			}
		}
		t.Errorf("no tool_network result in %+v", results)
	})

	t.Run("all tools present", func(t *testing.T) {
		path := fakePath("vcgencmd", "top", "df", "hostname", "ip", "grep", "w", "raspi-config", "sudo")
		results := RunAll(context.Background(), NewChecks(config.DefaultConfig(), Options{
			ConfigPath: "",
			LookPath:   path,
		}))

		if HasFailures(results) {
			t.Errorf("expected no failures, got %+v", results)
		}
	})
}
