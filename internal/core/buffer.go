package core

// FlushFunc is called by a [FlushBuffer] when it fills, and once more at
// the end of highlighting if any tokens remain. data is only valid for the
// duration of the call; the buffer reuses its backing storage immediately
// after.
type FlushFunc[T any] func(data []T)

// FlushBuffer is a fixed-capacity buffer owned by the caller. When a push
// would exceed its capacity, it invokes its flush callback with the
// accumulated elements and resets to empty. It never allocates: all
// storage is the slice passed to [NewFlushBuffer].
type FlushBuffer[T any] struct {
	data  []T
	size  int
	flush FlushFunc[T]
}

// NewFlushBuffer creates a buffer backed by data (data[:cap(data)] is used
// as scratch storage; len(data) is ignored and reset to 0) that calls flush
// whenever it fills. data must have nonzero capacity.
func NewFlushBuffer[T any](data []T, flush FlushFunc[T]) *FlushBuffer[T] {
	if cap(data) == 0 {
		panic("ulight: FlushBuffer requires nonzero capacity")
	}
	if flush == nil {
		panic("ulight: FlushBuffer requires a non-nil flush function")
	}
	return &FlushBuffer[T]{
		data:  data[:cap(data)],
		size:  0,
		flush: flush,
	}
}

// Cap returns the buffer's fixed capacity.
func (b *FlushBuffer[T]) Cap() int {
	return len(b.data)
}

// Len returns the number of elements currently buffered.
func (b *FlushBuffer[T]) Len() int {
	return b.size
}

// Push appends t, flushing first if the buffer is full.
func (b *FlushBuffer[T]) Push(t T) {
	if b.size == len(b.data) {
		b.Flush()
	}
	b.data[b.size] = t
	b.size++
}

// AppendRange appends every element of ts, flushing between chunks as
// needed so that no single flush call ever exceeds the buffer's capacity.
func (b *FlushBuffer[T]) AppendRange(ts []T) {
	for len(ts) > 0 {
		room := len(b.data) - b.size
		if room == 0 {
			b.Flush()
			room = len(b.data)
		}
		n := min(room, len(ts))
		copy(b.data[b.size:], ts[:n])
		b.size += n
		ts = ts[n:]
	}
}

// Back returns a pointer to the last buffered element, for in-place
// coalescing. It panics if the buffer is empty.
func (b *FlushBuffer[T]) Back() *T {
	if b.size == 0 {
		panic("ulight: Back called on empty FlushBuffer")
	}
	return &b.data[b.size-1]
}

// Flush invokes the flush callback with the buffered elements, if any, and
// resets the buffer to empty. A no-op when the buffer is already empty.
func (b *FlushBuffer[T]) Flush() {
	if b.size == 0 {
		return
	}
	b.flush(b.data[:b.size])
	b.size = 0
}
