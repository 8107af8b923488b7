package tetris

import "github.com/kamstrup/intmap"

// Stats counts spawned pieces per shape
type Stats struct {
	spawned *intmap.Map[Shape, int]
	total   int
}

// NewStats creates empty statistics
func NewStats() *Stats {
	return &Stats{spawned: intmap.New[Shape, int](shapeCount)}
}

// Record counts a spawned piece
func (stats *Stats) Record(shape Shape) {
	count, _ := stats.spawned.Get(shape)
	stats.spawned.Put(shape, count+1)
	stats.total++
}

// Count returns how many pieces of shape were spawned
func (stats *Stats) Count(shape Shape) int {
	count, _ := stats.spawned.Get(shape)
	return count
}

// Total returns the number of spawned pieces
func (stats *Stats) Total() int {
	return stats.total
}

// Reset forgets all counts
func (stats *Stats) Reset() {
	stats.spawned = intmap.New[Shape, int](shapeCount)
	stats.total = 0
}
