// Package history implements the rolling window of CPU samples that feeds
// the trend graph.
package history

// DefaultSize is the default number of samples retained, one per tick.
const DefaultSize = 30

// Buffer is a fixed-capacity ring buffer of float64 samples. Once full, each
// push evicts the oldest entry. Values are stored as given; range validation
// happens at render time, not here.
//
// A Buffer is owned by the sample loop and is not safe for concurrent use.
type Buffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// New creates a buffer holding up to size samples. A non-positive size falls
// back to DefaultSize.
func New(size int) *Buffer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Buffer{
		data: make([]float64, size),
		size: size,
	}
}

// Push appends a sample, evicting the oldest when the buffer is full. O(1).
func (b *Buffer) Push(v float64) {
	b.data[b.head] = v
	b.head = (b.head + 1) % b.size
	if b.count < b.size {
		b.count++
	}
}

// Snapshot returns the retained samples in chronological order, oldest
// first. The returned slice is a copy; rendering from it cannot affect
// subsequent pushes.
func (b *Buffer) Snapshot() []float64 {
	if b.count == 0 {
		return nil
	}

	result := make([]float64, b.count)

	// head points at the next write position, so the oldest retained value
	// sits count slots behind it.
	start := (b.head - b.count + b.size) % b.size
	for i := 0; i < b.count; i++ {
		result[i] = b.data[(start+i)%b.size]
	}
	return result
}

// Len returns the number of samples currently retained.
func (b *Buffer) Len() int {
	return b.count
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer) Cap() int {
	return b.size
}
