package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the optional raspimon config file. Every field has a
// default, so the console runs without any file present.
type Config struct {
	Version     int               `yaml:"version" mapstructure:"version"`
	Commands    CommandsConfig    `yaml:"commands" mapstructure:"commands"`
	Temperature TemperatureConfig `yaml:"temperature" mapstructure:"temperature"`
	RaspiConfig RaspiConfig       `yaml:"raspi_config" mapstructure:"raspi_config"`
	Monitor     MonitorConfig     `yaml:"monitor" mapstructure:"monitor"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// CommandsConfig holds the shell command line behind each menu option.
// GPIO has no entry: that option is a fixed stub.
type CommandsConfig struct {
	Temperature string `yaml:"temperature" mapstructure:"temperature"`
	CPU         string `yaml:"cpu" mapstructure:"cpu"`
	Disk        string `yaml:"disk" mapstructure:"disk"`
	Network     string `yaml:"network" mapstructure:"network"`
	Sessions    string `yaml:"sessions" mapstructure:"sessions"`
	Config      string `yaml:"config" mapstructure:"config"`
}

// TemperatureConfig controls how option a samples the sensor.
type TemperatureConfig struct {
	// Samples is how many readings one selection prints.
	Samples int `yaml:"samples" mapstructure:"samples"`

	// Interval is the pause between readings.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// SensorFallback reads the kernel thermal sensors when the command fails.
	SensorFallback bool `yaml:"sensor_fallback" mapstructure:"sensor_fallback"`
}

// RaspiConfig controls option g.
type RaspiConfig struct {
	// Confirm asks before handing the terminal to the configuration tool.
	Confirm bool `yaml:"confirm" mapstructure:"confirm"`
}

// MonitorConfig controls the live dashboard (raspimon monitor).
type MonitorConfig struct {
	// Interval is how often the dashboard samples the board.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// History is how many samples each graph keeps.
	History int `yaml:"history" mapstructure:"history"`

	// Theme is one of MonitorThemes.
	Theme string `yaml:"theme" mapstructure:"theme"`

	// DiskPath is the mount point whose usage the dashboard shows.
	DiskPath string `yaml:"disk_path" mapstructure:"disk_path"`
}

// OutputConfig controls terminal styling.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// Default command lines for each option.
const (
	DefaultTemperatureCommand = "vcgencmd measure_temp"
	DefaultCPUCommand         = "top -b -n 1 -i"
	DefaultDiskCommand        = "df -h"
	DefaultNetworkCommand     = "hostname && ip -brief address && (grep nameserver /etc/resolv.conf || true)"
	DefaultSessionsCommand    = "w"
	DefaultConfigCommand      = "sudo raspi-config"
)

// MaxTemperatureSamples caps one temperature selection.
const MaxTemperatureSamples = 60

// Dashboard defaults and limits.
const (
	DefaultMonitorInterval = time.Second
	DefaultMonitorHistory  = 120
	DefaultMonitorTheme    = "dark"
	DefaultMonitorDiskPath = "/"

	MinMonitorInterval = 100 * time.Millisecond
	MinMonitorHistory  = 10
	MaxMonitorHistory  = 3600
)

// MonitorThemes are the dashboard color themes, in the order 't' cycles them.
var MonitorThemes = []string{"dark", "light", "solar"}

// DefaultConfig returns a Config with sensible defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Commands: CommandsConfig{
			Temperature: DefaultTemperatureCommand,
			CPU:         DefaultCPUCommand,
			Disk:        DefaultDiskCommand,
			Network:     DefaultNetworkCommand,
			Sessions:    DefaultSessionsCommand,
			Config:      DefaultConfigCommand,
		},
		Temperature: TemperatureConfig{
			Samples:        1,
			Interval:       2 * time.Second,
			SensorFallback: true,
		},
		RaspiConfig: RaspiConfig{
			Confirm: true,
		},
		Monitor: MonitorConfig{
			Interval: DefaultMonitorInterval,
			History:  DefaultMonitorHistory,
			Theme:    DefaultMonitorTheme,
			DiskPath: DefaultMonitorDiskPath,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
