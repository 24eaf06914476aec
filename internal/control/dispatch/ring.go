package dispatch

// Ring is a fixed-capacity double-ended buffer.
// Elements are pushed and popped at the tail; pushing onto a full ring drops
// the element at the head.
type Ring[T any] struct {
	buf  []T
	head int
	size int
}

// NewRing returns an empty ring of the given capacity, which is clamped to a
// minimum of 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v at the tail.
// If the ring was full, the oldest element is dropped and returned with
// evicted set.
func (r *Ring[T]) Push(v T) (dropped T, evicted bool) {
	if r.size == len(r.buf) {
		dropped = r.buf[r.head]
		r.buf[r.head] = v
		r.head = (r.head + 1) % len(r.buf)
		return dropped, true
	}
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
	return dropped, false
}

// Pop removes and returns the element at the tail.
// Returns false if the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	idx := (r.head + r.size - 1) % len(r.buf)
	v := r.buf[idx]
	r.buf[idx] = zero
	r.size--
	return v, true
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Items returns a copy of the elements, oldest first.
func (r *Ring[T]) Items() []T {
	result := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		result[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return result
}
