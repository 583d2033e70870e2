// Package history provides the fixed-capacity buffer that keeps each
// account's most recent outgoing transfers.
package history

import "fmt"

// Ring is a fixed-capacity circular buffer that overwrites its oldest entry
// when full. It is not safe for concurrent use; the owning account's lock
// must be held around every call.
type Ring[T any] struct {
	buf   []T
	next  int
	count int
}

// New creates a Ring holding at most capacity entries.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be positive, got %d", capacity)
	}
	return &Ring[T]{buf: make([]T, capacity)}, nil
}

// Append stores v at the write cursor, evicting the oldest entry once the
// buffer has wrapped.
func (r *Ring[T]) Append(v T) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Len returns the number of entries currently held.
func (r *Ring[T]) Len() int {
	return r.count
}

// RecentNewestFirst returns the held entries ordered most recent first.
// The returned slice is owned by the caller; later appends never mutate it.
func (r *Ring[T]) RecentNewestFirst() []T {
	out := make([]T, 0, r.count)
	i := r.prev(r.next)
	for n := 0; n < r.count; n++ {
		out = append(out, r.buf[i])
		i = r.prev(i)
	}
	return out
}

func (r *Ring[T]) prev(i int) int {
	return (i - 1 + len(r.buf)) % len(r.buf)
}
