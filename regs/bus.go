// Package regs maps named hardware register blocks onto base addresses.
//
// A Block describes the layout of one register block type (field name to
// byte offset). A View binds a Block to the base address of one peripheral
// instance and a Bus that performs the actual word accesses. Register
// fields are resolved by name once, when a driver sets itself up; the
// resulting Reg values perform a fresh bus access on every call.
package regs

// Bus performs word-sized accesses to the peripheral address space.
//
// Implementations must not buffer or cache: every Load32 observes the
// current hardware state and every Store32 reaches the device.
type Bus interface {
	// Load32 reads the 32-bit word at addr
	Load32(addr uint32) uint32

	// Store32 writes the 32-bit word at addr
	Store32(addr uint32, value uint32)

	// AddressOf returns the bus address of the first byte of buf,
	// as seen by a DMA controller. Returns 0 for an empty buffer.
	AddressOf(buf []byte) uint32
}
