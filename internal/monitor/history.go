package monitor

import "sync"

// DefaultHistorySize is the number of samples kept per series when none is
// configured.
const DefaultHistorySize = 120

// Series names one graph.
type Series int

const (
	SeriesCPU Series = iota
	SeriesTemp
	SeriesGPU
	SeriesNetIn    // bytes/s
	SeriesNetOut   // bytes/s
	SeriesDiskRead // bytes/s
	SeriesDiskWrite
	seriesCount
)

// History stores past samples in ring buffers for sparkline rendering.
// Throughput series hold rates computed from counter deltas, so they start
// one sample behind the others.
type History struct {
	mu     sync.RWMutex
	size   int
	series [seriesCount]*ringBuffer
	last   *Metrics
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history keeping size samples per series.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	h := &History{size: size}
	for i := range h.series {
		h.series[i] = newRingBuffer(size)
	}
	return h
}

// Push records a sample. Readings missing from m are skipped rather than
// recorded as zero.
func (h *History) Push(m *Metrics) {
	if m == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.series[SeriesCPU].push(m.CPU.Percent)
	if m.Temperature != nil {
		h.series[SeriesTemp].push(m.Temperature.Celsius)
	}
	if m.GPU != nil {
		h.series[SeriesGPU].push(m.GPU.Percent)
	}

	if prev := h.last; prev != nil {
		dt := m.Time.Sub(prev.Time).Seconds()
		if dt > 0 {
			h.series[SeriesNetIn].push(rate(prev.Network.BytesIn, m.Network.BytesIn, dt))
			h.series[SeriesNetOut].push(rate(prev.Network.BytesOut, m.Network.BytesOut, dt))
			h.series[SeriesDiskRead].push(rate(prev.Disk.ReadBytes, m.Disk.ReadBytes, dt))
			h.series[SeriesDiskWrite].push(rate(prev.Disk.WriteBytes, m.Disk.WriteBytes, dt))
		}
	}
	h.last = m
}

// rate returns bytes per second between two counter readings. A counter that
// went backwards (wraparound or reset) counts as zero.
func rate(older, newer uint64, seconds float64) float64 {
	if newer < older {
		return 0
	}
	return float64(newer-older) / seconds
}

// Get returns the last count values of a series, oldest first. Returns fewer
// values if not enough history is available.
func (h *History) Get(s Series, count int) []float64 {
	if s < 0 || s >= seriesCount {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.series[s].getLast(count)
}

// All returns every stored value of a series, oldest first.
func (h *History) All(s Series) []float64 {
	return h.Get(s, h.size)
}

// Latest returns the most recent value of a series.
func (h *History) Latest(s Series) (float64, bool) {
	last := h.Get(s, 1)
	if len(last) == 0 {
		return 0, false
	}
	return last[0], true
}

// Count returns the number of CPU samples stored.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.series[SeriesCPU].count
}

// Clear drops every sample.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.series {
		h.series[i] = newRingBuffer(h.size)
	}
	h.last = nil
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)
	// head is the next write position, so the newest value is at head-1
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
