package parabel

import "sync"

// Progress is a thread-safe counter of nodes trained against a (growing)
// total, suitable for surfacing to an external observer. It is a side
// channel only: training logic never reads it back.
type Progress struct {
	mu      sync.Mutex
	trained uint64
	total   uint64
}

// NewProgress returns a Progress counter seeded with the given total.
func NewProgress(total uint64) *Progress {
	return &Progress{total: total}
}

// Add increments the trained-node count by n.
func (p *Progress) Add(n uint64) {
	p.mu.Lock()
	p.trained += n
	p.mu.Unlock()
}

// AddTotal increments the total node count by n, used when a branch split
// reveals more nodes than originally estimated.
func (p *Progress) AddTotal(n uint64) {
	p.mu.Lock()
	p.total += n
	p.mu.Unlock()
}

// Snapshot returns the current (trained, total) pair.
func (p *Progress) Snapshot() (trained, total uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trained, p.total
}
