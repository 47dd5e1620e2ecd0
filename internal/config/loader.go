package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".raspimon.yaml"
	// GlobalConfigDir is the directory for the global config, relative to home.
	GlobalConfigDir = ".config/raspimon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path, with defaults for missing keys.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'raspimon init' to create one, or drop the --config flag to use defaults")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .raspimon.yaml in current directory
// 3. ~/.config/raspimon/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if global := GlobalConfigPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads the config found by Find, or returns defaults when
// there is none. Only an explicit path that is missing is an error.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// GlobalConfigPath returns ~/.config/raspimon/config.yaml, or "" when the
// home directory is unknown.
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// setDefaults mirrors DefaultConfig into viper so partially filled files
// keep the defaults for keys they omit.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("commands.temperature", d.Commands.Temperature)
	v.SetDefault("commands.cpu", d.Commands.CPU)
	v.SetDefault("commands.disk", d.Commands.Disk)
	v.SetDefault("commands.network", d.Commands.Network)
	v.SetDefault("commands.sessions", d.Commands.Sessions)
	v.SetDefault("commands.config", d.Commands.Config)
	v.SetDefault("temperature.samples", d.Temperature.Samples)
	v.SetDefault("temperature.interval", d.Temperature.Interval.String())
	v.SetDefault("temperature.sensor_fallback", d.Temperature.SensorFallback)
	v.SetDefault("raspi_config.confirm", d.RaspiConfig.Confirm)
	v.SetDefault("monitor.interval", d.Monitor.Interval.String())
	v.SetDefault("monitor.history", d.Monitor.History)
	v.SetDefault("monitor.theme", d.Monitor.Theme)
	v.SetDefault("monitor.disk_path", d.Monitor.DiskPath)
	v.SetDefault("output.color", d.Output.Color)
}
