//go:build tinygo

package regs

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is the Bus of the running microcontroller: every access is a
// volatile load or store at the physical address.
type MMIO struct{}

// Load32 implements Bus
func (MMIO) Load32(addr uint32) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Get()
}

// Store32 implements Bus
func (MMIO) Store32(addr uint32, value uint32) {
	(*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Set(value)
}

// AddressOf implements Bus. The buffer must stay reachable for as long as
// a DMA channel reads from it.
func (MMIO) AddressOf(buf []byte) uint32 {
	if len(buf) == 0 {
		return 0
	}
	return uint32(uintptr(unsafe.Pointer(&buf[0])))
}
