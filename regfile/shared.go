package regfile

import "sync"

// Shared guards a RegFile for use from several goroutines. Each method
// holds the lock for the whole operation, so a step's reads and its write
// are observed as one unit.
type Shared struct {
	mu sync.Mutex
	rf RegFile
}

// NewShared creates a cleared, lock-protected register file.
func NewShared() *Shared {
	return &Shared{}
}

// Step evaluates one cycle atomically.
func (s *Shared) Step(in Inputs) Outputs {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rf.Step(in)
}

// Reset clears every cell atomically.
func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rf.Reset()
}

// Snapshot returns a consistent copy of all cells.
func (s *Shared) Snapshot() [NumCells]Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rf.Snapshot()
}
