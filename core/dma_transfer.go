package core

import (
	"siggen/regs"
	"siggen/stm32wb"
)

// Location is one end of a transfer. Board code hands the core either a
// raw register address or a buffer the bus can place in memory.
type Location interface {
	BusAddress(bus regs.Bus) uint32
}

// Address is a fixed bus address, typically a peripheral data register
type Address uint32

// BusAddress implements Location
func (a Address) BusAddress(regs.Bus) uint32 {
	return uint32(a)
}

// Buffer is memory the DMA reads from or writes to. It must outlive the
// transfer; in circular mode that is forever.
type Buffer []byte

// BusAddress implements Location
func (b Buffer) BusAddress(bus regs.Bus) uint32 {
	return bus.AddressOf(b)
}

// MaxTransferLength is the largest element count CNDTR holds
const MaxTransferLength = stm32wb.DMA_CNDTR_NDT

// Start loads a transfer into a configured channel and enables it. A
// channel that is already running is disabled first, so its registers are
// never changed while the hardware owns them.
func (d *DMA) Start(h *DMAHandle, dir Direction, src, dst Location, length uint32) error {
	if h == nil || !h.ccr.Valid() {
		return invalid("start on unconfigured channel")
	}
	if h.state == StateDisabled {
		return invalid(h.name + " started before configure")
	}
	if length == 0 || length > MaxTransferLength {
		return invalid("transfer length " + utoa(length))
	}
	switch dir {
	case PeriphToMemory, MemoryToPeriph, MemoryToMemory:
	default:
		return invalid("direction " + dir.String())
	}

	if src == nil || dst == nil {
		return invalid("missing transfer endpoint")
	}

	bus := d.p.Bus()
	srcAddr := src.BusAddress(bus)
	dstAddr := dst.BusAddress(bus)
	if srcAddr == 0 || dstAddr == 0 {
		return invalid("transfer address is zero")
	}

	state := disableInterrupts()
	defer restoreInterrupts(state)

	h.ccr.ClearBits(stm32wb.DMA_CCR_EN)
	h.state = StateDisabled

	h.muxCFR.Set(h.muxMask)
	if h.hasGenerator {
		h.genRGCFR.Set(h.genMask)
	}
	h.ifcr.Set(h.flagMask)

	h.cndtr.Set(length)
	if dir == MemoryToPeriph {
		h.cpar.Set(dstAddr)
		h.cmar.Set(srcAddr)
	} else {
		h.cpar.Set(srcAddr)
		h.cmar.Set(dstAddr)
	}

	h.ccr.SetBits(stm32wb.DMA_CCR_EN)
	h.state = StateEnabled
	RecordEvent(EvtDMAStart, uint8(h.config.Controller), h.ccr.Addr(), length)
	DebugPrintln("[DMA] " + h.name + " started len=" + utoa(length) +
		" cpar=" + hexa(h.cpar.Get()) + " cmar=" + hexa(h.cmar.Get()))
	return nil
}
