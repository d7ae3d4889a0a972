package protocol

// InputBuffer is a queue of received bytes the parser consumes frames from
type InputBuffer interface {
	Data() []byte   // Unconsumed bytes, contiguous
	Available() int // len(Data())
	Pop(n int)      // Consume n bytes from the front
}

// OutputBuffer is where frames are assembled. The transport patches the
// length byte once the payload is known, so positions must stay stable
// until the frame is complete.
type OutputBuffer interface {
	Output(data []byte)
	CurPosition() int
	Update(pos int, val byte)
	DataSince(pos int) []byte
}

// SliceInputBuffer reads from a fixed byte slice
type SliceInputBuffer struct {
	data []byte
}

// NewSliceInputBuffer wraps data
func NewSliceInputBuffer(data []byte) *SliceInputBuffer {
	return &SliceInputBuffer{data: data}
}

func (s *SliceInputBuffer) Data() []byte   { return s.data }
func (s *SliceInputBuffer) Available() int { return len(s.data) }

func (s *SliceInputBuffer) Pop(n int) {
	s.data = s.data[min(n, len(s.data)):]
}

// ScratchOutput collects frames in a MessageMax byte array; writes past
// the end are dropped.
type ScratchOutput struct {
	buf [MessageMax]byte
	n   int
}

// NewScratchOutput returns an empty scratch buffer
func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{}
}

func (s *ScratchOutput) Output(data []byte) {
	s.n += copy(s.buf[s.n:], data)
}

func (s *ScratchOutput) CurPosition() int { return s.n }

func (s *ScratchOutput) Update(pos int, val byte) {
	if pos >= 0 && pos < s.n {
		s.buf[pos] = val
	}
}

func (s *ScratchOutput) DataSince(pos int) []byte {
	if pos < 0 || pos > s.n {
		return nil
	}
	return s.buf[pos:s.n]
}

// Result returns everything written since the last Reset
func (s *ScratchOutput) Result() []byte { return s.buf[:s.n] }

// Reset empties the buffer
func (s *ScratchOutput) Reset() { s.n = 0 }

// Truncate drops everything written after pos
func (s *ScratchOutput) Truncate(pos int) {
	if pos >= 0 && pos < s.n {
		s.n = pos
	}
}

// FifoBuffer holds bytes read from the serial port until the parser has
// consumed them. Consumed space is reclaimed by sliding the remaining
// bytes to the front on the next Write, so Data never copies.
type FifoBuffer struct {
	buf   []byte
	start int
	end   int
}

// NewFifoBuffer returns a buffer holding at most capacity bytes
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{buf: make([]byte, capacity)}
}

// Write stores as much of data as fits and returns the count stored
func (f *FifoBuffer) Write(data []byte) int {
	if f.end+len(data) > len(f.buf) && f.start > 0 {
		f.end = copy(f.buf, f.buf[f.start:f.end])
		f.start = 0
	}
	n := copy(f.buf[f.end:], data)
	f.end += n
	return n
}

func (f *FifoBuffer) Data() []byte   { return f.buf[f.start:f.end] }
func (f *FifoBuffer) Available() int { return f.end - f.start }

// Free returns how many more bytes Write accepts
func (f *FifoBuffer) Free() int { return len(f.buf) - f.Available() }

func (f *FifoBuffer) Pop(n int) {
	f.start += min(n, f.Available())
	if f.start == f.end {
		f.start, f.end = 0, 0
	}
}

// IsEmpty reports whether every byte has been consumed
func (f *FifoBuffer) IsEmpty() bool { return f.start == f.end }

// Reset discards all buffered bytes
func (f *FifoBuffer) Reset() { f.start, f.end = 0, 0 }
