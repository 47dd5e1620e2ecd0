// Package parsers reads the one-line reports printed by the Raspberry Pi
// firmware tool vcgencmd.
package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// value returns the text after "=" in a vcgencmd report such as
// "temp=45.2'C" or "frequency(1)=500000000". The key before "=" must start
// with prefix.
func value(out, prefix string) (string, error) {
	line := strings.TrimSpace(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}

	key, val, ok := strings.Cut(line, "=")
	if !ok || !strings.HasPrefix(key, prefix) {
		return "", fmt.Errorf("unexpected vcgencmd output %q", line)
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return "", fmt.Errorf("empty value in vcgencmd output %q", line)
	}
	return val, nil
}

// ParseMeasureTemp parses `vcgencmd measure_temp` output ("temp=45.2'C").
func ParseMeasureTemp(out string) (float64, error) {
	val, err := value(out, "temp")
	if err != nil {
		return 0, err
	}
	val = strings.TrimSuffix(strings.TrimSuffix(val, "C"), "'")

	celsius, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse temperature %q: %w", val, err)
	}
	return celsius, nil
}

// ParseMeasureClock parses `vcgencmd measure_clock <clock>` output. Older
// firmware prints "frequency(48)=250000000", newer prints "core=250000000".
func ParseMeasureClock(out string) (uint64, error) {
	val, err := value(out, "")
	if err != nil {
		return 0, err
	}

	hz, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse clock %q: %w", val, err)
	}
	return hz, nil
}

// ParseThrottled parses `vcgencmd get_throttled` output ("throttled=0x50005").
func ParseThrottled(out string) (uint64, error) {
	val, err := value(out, "throttled")
	if err != nil {
		return 0, err
	}

	bits, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse throttled state %q: %w", val, err)
	}
	return bits, nil
}

// ParseMeasureVolts parses `vcgencmd measure_volts` output ("volt=1.2000V").
func ParseMeasureVolts(out string) (float64, error) {
	val, err := value(out, "volt")
	if err != nil {
		return 0, err
	}
	val = strings.TrimSuffix(val, "V")

	volts, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse voltage %q: %w", val, err)
	}
	return volts, nil
}

// throttledBits names the get_throttled bits. Bits 0-3 describe the current
// state, bits 16-19 record that the condition happened since boot.
var throttledBits = []struct {
	bit  uint
	name string
}{
	{0, "under-voltage"},
	{1, "arm frequency capped"},
	{2, "throttled"},
	{3, "soft temperature limit"},
	{16, "under-voltage occurred"},
	{17, "arm frequency capping occurred"},
	{18, "throttling occurred"},
	{19, "soft temperature limit occurred"},
}

// ThrottledFlags lists the conditions set in a get_throttled bit field, in
// bit order. Zero returns nil.
func ThrottledFlags(bits uint64) []string {
	var flags []string
	for _, b := range throttledBits {
		if bits&(1<<b.bit) != 0 {
			flags = append(flags, b.name)
		}
	}
	return flags
}
