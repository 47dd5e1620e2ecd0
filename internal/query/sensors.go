package query

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// SensorReading is one temperature from the kernel's thermal interfaces.
type SensorReading struct {
	Sensor  string
	Celsius float64
}

// SensorReader lists the temperatures the kernel exposes.
type SensorReader interface {
	Temperatures(ctx context.Context) ([]SensorReading, error)
}

// HostSensors reads thermal zones and hwmon through gopsutil.
type HostSensors struct{}

// Temperatures implements SensorReader. gopsutil can return readings together
// with a warning error for sensors it couldn't parse; the readings are kept.
func (HostSensors) Temperatures(ctx context.Context) ([]SensorReading, error) {
	stats, err := host.SensorsTemperaturesWithContext(ctx)

	readings := make([]SensorReading, 0, len(stats))
	for _, s := range stats {
		readings = append(readings, SensorReading{Sensor: s.SensorKey, Celsius: s.Temperature})
	}
	return readings, err
}

// socSensorHints identify the SoC sensor among the ones a board reports.
// cpu_thermal is the name on Raspberry Pi OS.
var socSensorHints = []string{"cpu_thermal", "cpu", "soc", "thermal_zone0", "coretemp"}

// PickSoCReading returns the reading most likely to be the SoC temperature:
// the first matching a known sensor name, otherwise the first with a
// positive value.
func PickSoCReading(readings []SensorReading) (SensorReading, bool) {
	for _, hint := range socSensorHints {
		for _, r := range readings {
			if r.Celsius > 0 && strings.Contains(strings.ToLower(r.Sensor), hint) {
				return r, true
			}
		}
	}
	for _, r := range readings {
		if r.Celsius > 0 {
			return r, true
		}
	}
	return SensorReading{}, false
}
