package dashboard

import "sync/atomic"

// Loader serializes concurrent dashboard refreshes without locking the fetch
// itself: every refresh takes a generation id up front, and only the result
// carrying the newest id gets applied. A slow fetch that finishes after a
// newer one started is thrown away, so a stale snapshot can never overwrite
// a fresher one.
type Loader struct {
	latest atomic.Uint64
}

// Begin marks the start of a refresh and returns its generation id.
func (l *Loader) Begin() uint64 {
	return l.latest.Add(1)
}

// Apply runs apply only if gen is still the newest generation. Returns
// whether the result was applied.
func (l *Loader) Apply(gen uint64, apply func()) bool {
	if l.latest.Load() != gen {
		return false
	}
	apply()
	return true
}
