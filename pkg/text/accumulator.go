package text

import "fmt"

// Accumulator is the reusable buffer a block emitter fills while a
// multi-line block is collected across several scanner matches. At most one
// block accumulates at a time; the owner must Clear it before reuse.
type Accumulator struct {
	capacity int
	buf      []byte
}

// NewAccumulator creates an Accumulator holding up to capacity bytes.
// A non-positive capacity selects DefaultScratchCap.
func NewAccumulator(capacity int) *Accumulator {
	if capacity <= 0 {
		capacity = DefaultScratchCap
	}
	return &Accumulator{
		capacity: capacity,
		buf:      make([]byte, 0, capacity),
	}
}

// Start clears the buffer and stores s as the block's first fragment.
func (a *Accumulator) Start(s []byte) error {
	a.buf = a.buf[:0]
	return a.Append(s)
}

// Append adds s to the block being accumulated.
func (a *Accumulator) Append(s []byte) error {
	if len(a.buf)+len(s) > a.capacity {
		return fmt.Errorf("%w: accumulating %q", ErrBufferOverflow, Excerpt(s))
	}
	a.buf = append(a.buf, s...)
	return nil
}

// Bytes returns the accumulated block. The slice aliases the internal
// buffer and is invalidated by Start or Clear.
func (a *Accumulator) Bytes() []byte {
	return a.buf
}

// Len returns the number of accumulated bytes.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// Clear empties the buffer for reuse.
func (a *Accumulator) Clear() {
	a.buf = a.buf[:0]
}
