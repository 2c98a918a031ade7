package memutil

import (
	"bytes"
	"testing"
)

func TestBufferGrowth(t *testing.T) {
	const inc = 4
	b := NewBuffer(inc)

	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatalf("new buffer: len %d cap %d, want 0 0", b.Len(), b.Cap())
	}

	// Span several growth steps and verify nothing is dropped or
	// reordered along the way.
	var want bytes.Buffer
	for i := 0; i < 3*inc+1; i++ {
		c := byte('a' + i%26)
		b.AppendByte(c)
		want.WriteByte(c)

		if b.Len() != i+1 {
			t.Fatalf("after %d appends: Len = %d", i+1, b.Len())
		}
		if b.Cap()%inc != 0 {
			t.Fatalf("capacity %d is not a multiple of the increment", b.Cap())
		}
		if b.Cap() < b.Len() {
			t.Fatalf("capacity %d below length %d", b.Cap(), b.Len())
		}
	}
	if b.Cap() != 4*inc {
		t.Errorf("capacity = %d, want %d (fixed-step growth)", b.Cap(), 4*inc)
	}
	if !bytes.Equal(b.Bytes(), want.Bytes()) {
		t.Errorf("contents = %q, want %q", b.Bytes(), want.Bytes())
	}
	if b.String() != want.String() {
		t.Errorf("String = %q, want %q", b.String(), want.String())
	}
}

func TestBufferGrowsExactlyWhenFull(t *testing.T) {
	b := NewBuffer(2)
	b.AppendByte('x')
	b.AppendByte('y')
	if b.Cap() != 2 {
		t.Fatalf("cap = %d, want 2", b.Cap())
	}
	b.AppendByte('z')
	if b.Cap() != 4 {
		t.Fatalf("cap after growth = %d, want 4", b.Cap())
	}
	if b.String() != "xyz" {
		t.Fatalf("contents = %q", b.String())
	}
}

func TestBufferDefaultIncrement(t *testing.T) {
	b := NewBuffer(0)
	b.AppendByte('a')
	if b.Cap() != DefaultIncrement {
		t.Fatalf("cap = %d, want DefaultIncrement %d", b.Cap(), DefaultIncrement)
	}
}

func TestBufferEmpty(t *testing.T) {
	b := NewBuffer(8)
	if got := b.Bytes(); len(got) != 0 {
		t.Fatalf("empty buffer Bytes = %v", got)
	}
	if b.String() != "" {
		t.Fatalf("empty buffer String = %q", b.String())
	}
}
