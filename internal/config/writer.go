package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"gopkg.in/yaml.v3"
)

// writableConfig is the on-disk shape written by raspimon init. Durations
// are strings so the file reads "2s" rather than nanoseconds.
type writableConfig struct {
	Version     int            `yaml:"version"`
	Commands    CommandsConfig `yaml:"commands"`
	Temperature struct {
		Samples        int    `yaml:"samples"`
		Interval       string `yaml:"interval"`
		SensorFallback bool   `yaml:"sensor_fallback"`
	} `yaml:"temperature"`
	RaspiConfig RaspiConfig `yaml:"raspi_config"`
	Monitor     struct {
		Interval string `yaml:"interval"`
		History  int    `yaml:"history"`
		Theme    string `yaml:"theme"`
		DiskPath string `yaml:"disk_path"`
	} `yaml:"monitor"`
	Output OutputConfig `yaml:"output"`
}

const fileHeader = "# raspimon configuration\n# Every key is optional; missing keys use the built-in defaults.\n\n"

// Marshal renders cfg as YAML with a short header comment.
func Marshal(cfg *Config) ([]byte, error) {
	w := writableConfig{
		Version:     cfg.Version,
		Commands:    cfg.Commands,
		RaspiConfig: cfg.RaspiConfig,
		Output:      cfg.Output,
	}
	w.Temperature.Samples = cfg.Temperature.Samples
	w.Temperature.Interval = cfg.Temperature.Interval.String()
	w.Temperature.SensorFallback = cfg.Temperature.SensorFallback
	w.Monitor.Interval = cfg.Monitor.Interval.String()
	w.Monitor.History = cfg.Monitor.History
	w.Monitor.Theme = cfg.Monitor.Theme
	w.Monitor.DiskPath = cfg.Monitor.DiskPath

	body, err := yaml.Marshal(&w)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return append([]byte(fileHeader), body...), nil
}

// Write saves cfg to path, creating parent directories. An existing file is
// only replaced when force is set.
func Write(path string, cfg *Config, force bool) error {
	path = ExpandTilde(path)

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			"Config file already exists: "+path,
			"Use --force to overwrite it")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't encode the config",
			"This shouldn't happen - please report this bug!")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write config file",
			"Check permissions on "+path)
	}

	return nil
}
