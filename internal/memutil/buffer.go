package memutil

// DefaultIncrement is the growth step used for interactive line input.
const DefaultIncrement = 20

// Buffer accumulates bytes of unknown total length, growing its
// backing store by a fixed increment each time it fills up. The
// fixed-step strategy (rather than doubling) is deliberate: call sites
// bound total growth to the length of a line typed at a terminal.
type Buffer struct {
	data []byte
	n    int
	inc  int
}

// NewBuffer returns a Buffer that grows in steps of increment bytes.
// A non-positive increment falls back to DefaultIncrement.
func NewBuffer(increment int) *Buffer {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	return &Buffer{inc: increment}
}

// AppendByte adds c to the buffer, growing the backing store by one
// increment exactly when length has reached capacity. Earlier contents
// are preserved across growth.
func (b *Buffer) AppendByte(c byte) {
	if b.n == len(b.data) {
		grown := make([]byte, len(b.data)+b.inc)
		copy(grown, b.data[:b.n])
		b.data = grown
	}
	b.data[b.n] = c
	b.n++
}

// Len reports the number of bytes appended so far.
func (b *Buffer) Len() int { return b.n }

// Cap reports the current capacity of the backing store.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes finalizes the buffer and returns its contents. The returned
// slice has length exactly Len; it remains valid until the next
// AppendByte.
func (b *Buffer) Bytes() []byte { return b.data[:b.n] }

// String finalizes the buffer as a string.
func (b *Buffer) String() string { return string(b.data[:b.n]) }
