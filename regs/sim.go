package regs

import "encoding/binary"

// SimSRAMBase is where SimBus places buffers handed to AddressOf.
const SimSRAMBase = 0x20000000

// Op is the kind of a logged bus access
type Op uint8

const (
	OpLoad Op = iota
	OpStore
)

func (o Op) String() string {
	if o == OpStore {
		return "store"
	}
	return "load"
}

// Access is one entry of the SimBus access log.
type Access struct {
	Op    Op
	Addr  uint32
	Value uint32
}

// SimBus is a Bus backed by sparse word memory. It records every Load32
// and Store32 in order, which lets tests and the host planner check the
// exact register sequence a driver produces.
//
// SimBus does not model peripheral side effects (write-1-to-clear flags,
// self-clearing bits); a store simply replaces the word.
type SimBus struct {
	mem     map[uint32]uint32
	log     []Access
	next    uint32
	buffers map[*byte]uint32
}

// NewSimBus returns an empty simulated bus
func NewSimBus() *SimBus {
	return &SimBus{
		mem:     make(map[uint32]uint32),
		next:    SimSRAMBase,
		buffers: make(map[*byte]uint32),
	}
}

// Load32 implements Bus
func (s *SimBus) Load32(addr uint32) uint32 {
	v := s.mem[addr]
	s.log = append(s.log, Access{Op: OpLoad, Addr: addr, Value: v})
	return v
}

// Store32 implements Bus
func (s *SimBus) Store32(addr uint32, value uint32) {
	s.mem[addr] = value
	s.log = append(s.log, Access{Op: OpStore, Addr: addr, Value: value})
}

// AddressOf implements Bus. The buffer contents are copied into simulated
// SRAM at a word aligned address; the same buffer always maps to the same
// address.
func (s *SimBus) AddressOf(buf []byte) uint32 {
	if len(buf) == 0 {
		return 0
	}
	if addr, ok := s.buffers[&buf[0]]; ok {
		return addr
	}

	addr := s.next
	s.buffers[&buf[0]] = addr
	s.next += (uint32(len(buf)) + WordSize - 1) &^ (WordSize - 1)

	var word [WordSize]byte
	for off := 0; off < len(buf); off += WordSize {
		word = [WordSize]byte{}
		copy(word[:], buf[off:])
		s.mem[addr+uint32(off)] = binary.LittleEndian.Uint32(word[:])
	}
	return addr
}

// Poke sets a word without logging the access
func (s *SimBus) Poke(addr, value uint32) {
	s.mem[addr] = value
}

// Peek reads a word without logging the access
func (s *SimBus) Peek(addr uint32) uint32 {
	return s.mem[addr]
}

// Bytes reads n bytes of simulated memory starting at addr
func (s *SimBus) Bytes(addr uint32, n int) []byte {
	out := make([]byte, n)
	var word [WordSize]byte
	for i := 0; i < n; i++ {
		a := addr + uint32(i)
		binary.LittleEndian.PutUint32(word[:], s.mem[a&^(WordSize-1)])
		out[i] = word[a&(WordSize-1)]
	}
	return out
}

// Accesses returns a copy of the access log
func (s *SimBus) Accesses() []Access {
	out := make([]Access, len(s.log))
	copy(out, s.log)
	return out
}

// Writes returns only the logged stores, in order
func (s *SimBus) Writes() []Access {
	var out []Access
	for _, a := range s.log {
		if a.Op == OpStore {
			out = append(out, a)
		}
	}
	return out
}

// ClearLog drops the access log, keeping memory contents
func (s *SimBus) ClearLog() {
	s.log = s.log[:0]
}
