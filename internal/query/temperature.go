package query

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rileyhilliard/raspimon/internal/errors"
	"github.com/rileyhilliard/raspimon/internal/exec"
	"github.com/rileyhilliard/raspimon/internal/logger"
)

// TemperatureQuery reads the SoC temperature, Samples times, Interval apart.
// When the command fails and Sensors is set, the kernel thermal sensors are
// read instead.
type TemperatureQuery struct {
	Command  string
	Samples  int
	Interval time.Duration
	Runner   exec.Runner
	Sensors  SensorReader
	Log      logger.Logger
}

// Kind implements Query.
func (q *TemperatureQuery) Kind() Kind { return KindTemperature }

// Run implements Query. A cancelled context stops sampling and returns the
// readings taken so far along with the context error.
func (q *TemperatureQuery) Run(ctx context.Context) (string, error) {
	var out strings.Builder
	err := q.Stream(ctx, &out)
	return out.String(), err
}

// Stream implements StreamingQuery, writing each reading to w as soon as it
// is taken.
func (q *TemperatureQuery) Stream(ctx context.Context, w io.Writer) error {
	samples := q.Samples
	if samples < 1 {
		samples = 1
	}

	for i := 0; i < samples; i++ {
		if i > 0 && q.Interval > 0 {
			timer := time.NewTimer(q.Interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		reading, err := q.sample(ctx)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, reading); err != nil {
			return err
		}
	}

	return nil
}

// sample takes one reading from the command, falling back to the sensors.
func (q *TemperatureQuery) sample(ctx context.Context) (string, error) {
	reading, err := capture(ctx, q.Runner, KindTemperature, q.Command)
	if err == nil {
		return reading, nil
	}
	if q.Sensors == nil {
		return "", err
	}

	q.logger().Debug("temperature: %q failed, reading thermal sensors", q.Command)

	fallback, sensorErr := q.readSensors(ctx)
	if sensorErr != nil {
		q.logger().Debug("temperature: sensor fallback failed: %v", sensorErr)
		return "", err
	}
	return fallback, nil
}

func (q *TemperatureQuery) readSensors(ctx context.Context) (string, error) {
	readings, err := q.Sensors.Temperatures(ctx)
	if len(readings) == 0 {
		if err == nil {
			err = fmt.Errorf("no thermal sensors reported")
		}
		return "", errors.NewToolFailure(FailureMessage(KindTemperature), err, "")
	}

	r, ok := PickSoCReading(readings)
	if !ok {
		return "", errors.NewToolFailure(FailureMessage(KindTemperature),
			fmt.Errorf("no thermal sensor reported a temperature"), "")
	}
	return FormatReading(r), nil
}

func (q *TemperatureQuery) logger() logger.Logger {
	if q.Log == nil {
		return logger.Noop()
	}
	return q.Log
}

// FormatReading renders a sensor reading the way vcgencmd prints one.
func FormatReading(r SensorReading) string {
	return fmt.Sprintf("temp=%.1f'C (%s)\n", r.Celsius, r.Sensor)
}
