package monitor

import "time"

// Metrics is one sample of the board's state.
type Metrics struct {
	Time     time.Time
	Hostname string
	Uptime   time.Duration
	IP       string

	CPU     CPUMetrics
	Memory  MemoryMetrics
	Disk    DiskMetrics
	Network NetworkMetrics

	// Nil when the reading isn't available on this board.
	Temperature *TemperatureMetrics
	GPU         *GPUMetrics
	Power       *PowerMetrics

	// Errors holds one line per source that failed during this sample.
	Errors []string
}

// CPUMetrics represents CPU usage information.
type CPUMetrics struct {
	Percent float64    // 0-100 across all cores
	Cores   int        // logical cores
	LoadAvg [3]float64 // 1, 5, 15 minute load averages
}

// MemoryMetrics represents memory usage information.
type MemoryMetrics struct {
	UsedBytes  uint64
	TotalBytes uint64
	Percent    float64
}

// DiskMetrics covers the watched filesystem and the byte counters of the
// board's whole disks.
type DiskMetrics struct {
	Path       string
	UsedBytes  uint64
	TotalBytes uint64
	Percent    float64

	// Cumulative since boot, summed over whole disks.
	ReadBytes  uint64
	WriteBytes uint64
}

// NetworkMetrics holds cumulative byte counters summed over every interface
// except loopback.
type NetworkMetrics struct {
	BytesIn  uint64
	BytesOut uint64
}

// TemperatureMetrics is the SoC temperature.
type TemperatureMetrics struct {
	Celsius float64
	Source  string // "vcgencmd" or the kernel sensor name
}

// GPUMetrics approximates GPU load from the VideoCore core clock.
type GPUMetrics struct {
	CoreClockHz uint64
	Percent     float64
}

// PowerMetrics is the firmware's throttling and core voltage report.
type PowerMetrics struct {
	Throttled uint64
	Flags     []string
	Volts     float64 // 0 when measure_volts failed
}

// Throttling reports whether any current-state throttled bit is set.
func (p *PowerMetrics) Throttling() bool {
	return p != nil && p.Throttled&0xF != 0
}
