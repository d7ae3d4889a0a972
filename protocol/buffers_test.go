package protocol

import (
	"bytes"
	"testing"
)

func TestSliceInputBuffer(t *testing.T) {
	in := NewSliceInputBuffer([]byte{1, 2, 3, 4})
	in.Pop(3)
	if in.Available() != 1 || in.Data()[0] != 4 {
		t.Errorf("Expected [4], got %v", in.Data())
	}
	in.Pop(10)
	if in.Available() != 0 {
		t.Errorf("Expected empty buffer, got %v", in.Data())
	}
}

func TestScratchOutput(t *testing.T) {
	out := NewScratchOutput()
	out.Output([]byte{0, 0x10, 1, 2})
	out.Update(0, 9)
	out.Update(7, 9) // past the end, ignored

	if !bytes.Equal(out.Result(), []byte{9, 0x10, 1, 2}) {
		t.Errorf("Unexpected result: %v", out.Result())
	}
	if !bytes.Equal(out.DataSince(2), []byte{1, 2}) {
		t.Errorf("DataSince(2): got %v", out.DataSince(2))
	}
	if out.DataSince(5) != nil {
		t.Errorf("DataSince past the end should be nil, got %v", out.DataSince(5))
	}

	out.Truncate(1)
	if out.CurPosition() != 1 {
		t.Errorf("Expected position 1 after Truncate, got %d", out.CurPosition())
	}
	out.Truncate(3) // beyond current position, ignored
	if out.CurPosition() != 1 {
		t.Errorf("Truncate moved forward to %d", out.CurPosition())
	}

	out.Output(make([]byte, MessageMax+10))
	if out.CurPosition() != MessageMax {
		t.Errorf("Expected writes capped at %d, got %d", MessageMax, out.CurPosition())
	}

	out.Reset()
	if len(out.Result()) != 0 {
		t.Errorf("Expected empty result after Reset, got %d bytes", len(out.Result()))
	}
}

func TestFifoBuffer(t *testing.T) {
	fifo := NewFifoBuffer(8)
	if !fifo.IsEmpty() || fifo.Free() != 8 {
		t.Fatalf("New buffer: empty=%v free=%d", fifo.IsEmpty(), fifo.Free())
	}

	if n := fifo.Write([]byte{1, 2, 3, 4, 5, 6}); n != 6 {
		t.Errorf("Expected 6 bytes stored, got %d", n)
	}
	fifo.Pop(4)
	if !bytes.Equal(fifo.Data(), []byte{5, 6}) {
		t.Errorf("Expected [5 6], got %v", fifo.Data())
	}

	// Consumed space is reclaimed so the data stays contiguous
	if n := fifo.Write([]byte{7, 8, 9, 10, 11, 12, 13}); n != 6 {
		t.Errorf("Expected 6 bytes stored after compaction, got %d", n)
	}
	if !bytes.Equal(fifo.Data(), []byte{5, 6, 7, 8, 9, 10, 11, 12}) {
		t.Errorf("Unexpected data after compaction: %v", fifo.Data())
	}
	if fifo.Free() != 0 {
		t.Errorf("Expected full buffer, %d free", fifo.Free())
	}

	fifo.Pop(100)
	if !fifo.IsEmpty() {
		t.Errorf("Expected empty buffer, %d left", fifo.Available())
	}

	fifo.Write([]byte{1})
	fifo.Reset()
	if fifo.Available() != 0 {
		t.Errorf("Expected empty buffer after Reset, got %d", fifo.Available())
	}
}
