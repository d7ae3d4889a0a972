package core

import (
	"siggen/regs"
	"siggen/stm32wb"
)

// Controller identifies a DMA controller
type Controller uint8

const (
	DMA1 Controller = 1
	DMA2 Controller = 2
)

// ChannelsPerController is the number of channels of one DMA controller
const ChannelsPerController = 7

// Direction of a transfer, as encoded in CCR
type Direction uint32

const (
	PeriphToMemory Direction = 0
	MemoryToPeriph Direction = stm32wb.DMA_CCR_DIR
	MemoryToMemory Direction = stm32wb.DMA_CCR_MEM2MEM
)

func (d Direction) String() string {
	switch d {
	case PeriphToMemory:
		return "periph-to-memory"
	case MemoryToPeriph:
		return "memory-to-periph"
	case MemoryToMemory:
		return "memory-to-memory"
	}
	return "direction(" + hexa(uint32(d)) + ")"
}

// PeriphInc selects peripheral address increment
type PeriphInc uint32

const (
	PeriphIncDisable PeriphInc = 0
	PeriphIncEnable  PeriphInc = stm32wb.DMA_CCR_PINC
)

// MemInc selects memory address increment
type MemInc uint32

const (
	MemIncDisable MemInc = 0
	MemIncEnable  MemInc = stm32wb.DMA_CCR_MINC
)

// PeriphAlign is the peripheral side data width
type PeriphAlign uint32

const (
	PeriphAlignByte     PeriphAlign = 0
	PeriphAlignHalfWord PeriphAlign = stm32wb.DMA_CCR_PSIZE_0
	PeriphAlignWord     PeriphAlign = stm32wb.DMA_CCR_PSIZE_1
)

// MemAlign is the memory side data width
type MemAlign uint32

const (
	MemAlignByte     MemAlign = 0
	MemAlignHalfWord MemAlign = stm32wb.DMA_CCR_MSIZE_0
	MemAlignWord     MemAlign = stm32wb.DMA_CCR_MSIZE_1
)

// Mode is normal (one shot) or circular
type Mode uint32

const (
	ModeNormal   Mode = 0
	ModeCircular Mode = stm32wb.DMA_CCR_CIRC
)

// Priority is the channel arbitration level
type Priority uint32

const (
	PriorityLow      Priority = 0
	PriorityMedium   Priority = stm32wb.DMA_CCR_PL_0
	PriorityHigh     Priority = stm32wb.DMA_CCR_PL_1
	PriorityVeryHigh Priority = stm32wb.DMA_CCR_PL
)

// Request is a DMAMUX request line id
type Request uint32

const (
	RequestMem2Mem    Request = stm32wb.LL_DMAMUX_REQ_MEM2MEM
	RequestGenerator0 Request = stm32wb.LL_DMAMUX_REQ_GENERATOR0
	RequestGenerator1 Request = stm32wb.LL_DMAMUX_REQ_GENERATOR1
	RequestGenerator2 Request = stm32wb.LL_DMAMUX_REQ_GENERATOR2
	RequestGenerator3 Request = stm32wb.LL_DMAMUX_REQ_GENERATOR3
)

// IsGenerator reports whether r selects one of the request generators
func (r Request) IsGenerator() bool {
	return r >= RequestGenerator0 && r <= RequestGenerator3
}

// ccrConfigMask covers every CCR field Configure owns
const ccrConfigMask = stm32wb.DMA_CCR_PL | stm32wb.DMA_CCR_MSIZE | stm32wb.DMA_CCR_PSIZE |
	stm32wb.DMA_CCR_MINC | stm32wb.DMA_CCR_PINC | stm32wb.DMA_CCR_CIRC |
	stm32wb.DMA_CCR_DIR | stm32wb.DMA_CCR_MEM2MEM

// DMAConfig describes one channel's transfer shape
type DMAConfig struct {
	Controller  Controller
	Channel     uint8 // 1-based, as in the reference manual
	Request     Request
	Direction   Direction
	PeriphInc   PeriphInc
	MemInc      MemInc
	PeriphAlign PeriphAlign
	MemAlign    MemAlign
	Mode        Mode
	Priority    Priority
}

// Validate checks that every field holds one of its defined values.
func (c DMAConfig) Validate() error {
	switch c.Direction {
	case PeriphToMemory, MemoryToPeriph, MemoryToMemory:
	default:
		return invalid("direction " + c.Direction.String())
	}
	if c.PeriphInc != PeriphIncDisable && c.PeriphInc != PeriphIncEnable {
		return invalid("peripheral increment " + hexa(uint32(c.PeriphInc)))
	}
	if c.MemInc != MemIncDisable && c.MemInc != MemIncEnable {
		return invalid("memory increment " + hexa(uint32(c.MemInc)))
	}
	if uint32(c.PeriphAlign)&^stm32wb.DMA_CCR_PSIZE != 0 || c.PeriphAlign == stm32wb.DMA_CCR_PSIZE {
		return invalid("peripheral alignment " + hexa(uint32(c.PeriphAlign)))
	}
	if uint32(c.MemAlign)&^stm32wb.DMA_CCR_MSIZE != 0 || c.MemAlign == stm32wb.DMA_CCR_MSIZE {
		return invalid("memory alignment " + hexa(uint32(c.MemAlign)))
	}
	if c.Mode != ModeNormal && c.Mode != ModeCircular {
		return invalid("mode " + hexa(uint32(c.Mode)))
	}
	if c.Mode == ModeCircular && c.Direction == MemoryToMemory {
		return invalid("circular mode with memory-to-memory")
	}
	if uint32(c.Priority)&^stm32wb.DMA_CCR_PL != 0 {
		return invalid("priority " + hexa(uint32(c.Priority)))
	}
	if uint32(c.Request)&^stm32wb.DMAMUX_CxCR_DMAREQ_ID != 0 {
		return invalid("request " + utoa(uint32(c.Request)))
	}
	return nil
}

func (c DMAConfig) ccr() uint32 {
	return uint32(c.Direction) | uint32(c.PeriphInc) | uint32(c.MemInc) |
		uint32(c.PeriphAlign) | uint32(c.MemAlign) | uint32(c.Mode) | uint32(c.Priority)
}

// ChannelName is the table name of a DMA channel instance
func ChannelName(c Controller, channel uint8) string {
	return "DMA" + utoa(uint32(c)) + "_Channel" + utoa(uint32(channel))
}

// ChannelState tracks a handle through its lifetime
type ChannelState uint8

const (
	StateDisabled ChannelState = iota
	StateConfigured
	StateEnabled
)

func (s ChannelState) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateConfigured:
		return "configured"
	case StateEnabled:
		return "enabled"
	}
	return "unknown"
}

// DMAHandle is one resolved DMA channel together with the multiplexer and
// (optionally) request generator registers that feed it. It is created by
// Configure and only changed by Start.
type DMAHandle struct {
	config DMAConfig
	name   string
	index  uint32 // 0-based position within the controller

	channel regs.View
	ccr     regs.Reg
	cndtr   regs.Reg
	cpar    regs.Reg
	cmar    regs.Reg

	ifcr     regs.Reg
	flagMask uint32

	muxChannel uint32 // DMAMUX1 channel number
	mux        regs.View
	muxCCR     regs.Reg
	muxCFR     regs.Reg
	muxMask    uint32

	request      Request
	generator    regs.View // unbound unless request is a generator
	genRGCR      regs.Reg
	genRGCFR     regs.Reg
	genMask      uint32
	hasGenerator bool

	state ChannelState
}

// Name returns the channel instance name, e.g. DMA1_Channel1
func (h *DMAHandle) Name() string { return h.name }

// Config returns the configuration the handle was created from
func (h *DMAHandle) Config() DMAConfig { return h.config }

// State returns the current lifecycle state
func (h *DMAHandle) State() ChannelState { return h.state }

// Channel returns the channel register view
func (h *DMAHandle) Channel() regs.View { return h.channel }

// Index returns the 0-based channel position within its controller
func (h *DMAHandle) Index() uint32 { return h.index }

// FlagMask returns the global interrupt flag of the channel in ISR/IFCR
func (h *DMAHandle) FlagMask() uint32 { return h.flagMask }

// MuxChannel returns the DMAMUX1 channel number feeding this DMA channel
func (h *DMAHandle) MuxChannel() uint32 { return h.muxChannel }

// Mux returns the multiplexer channel register view
func (h *DMAHandle) Mux() regs.View { return h.mux }

// MuxStatusMask returns the channel's bit in the DMAMUX CSR/CFR registers
func (h *DMAHandle) MuxStatusMask() uint32 { return h.muxMask }

// Request returns the request line actually routed to the channel
func (h *DMAHandle) Request() Request { return h.request }

// Generator returns the request generator view and status mask. ok is
// false when the request is not one of the generators.
func (h *DMAHandle) Generator() (view regs.View, mask uint32, ok bool) {
	return h.generator, h.genMask, h.hasGenerator
}

// DMA programs channels of both controllers and the DMAMUX1 request
// multiplexer.
type DMA struct {
	p *Peripherals

	controllers [2]regs.View
	muxBases    [2]regs.View // DMAMUX1 channel feeding channel 1 of each controller
	muxOffsets  [2]uint32
	muxCFR      regs.Reg
	gen0        regs.View
	genRGCFR    regs.Reg
}

// dmamux channel numbering: DMA1 channels use mux 0..6, DMA2 7..13
var muxChannelOffset = [2]uint32{0, ChannelsPerController}

// NewDMA resolves the controller and multiplexer views shared by all
// channels. It performs no bus access.
func NewDMA(p *Peripherals) (*DMA, error) {
	d := &DMA{p: p}
	var err error

	for i, c := range []Controller{DMA1, DMA2} {
		if d.controllers[i], err = p.View("DMA" + utoa(uint32(c))); err != nil {
			return nil, err
		}
		d.muxOffsets[i] = muxChannelOffset[i]
		if d.muxBases[i], err = p.View("DMAMUX1_Channel" + utoa(muxChannelOffset[i])); err != nil {
			return nil, err
		}
	}

	status, err := p.View("DMAMUX1_ChannelStatus")
	if err != nil {
		return nil, err
	}
	if d.muxCFR, err = status.Reg("CFR"); err != nil {
		return nil, err
	}

	if d.gen0, err = p.View("DMAMUX1_RequestGenerator0"); err != nil {
		return nil, err
	}
	genStatus, err := p.View("DMAMUX1_RequestGenStatus")
	if err != nil {
		return nil, err
	}
	if d.genRGCFR, err = genStatus.Reg("RGCFR"); err != nil {
		return nil, err
	}
	return d, nil
}

// channelIndex recovers the 0-based channel position from the channel
// register address: channels start at offset 0x08 with a 0x14 stride.
func channelIndex(base uint32) uint32 {
	return ((base & 0xFF) - 8) / 20
}

// flagShift is the bit offset of a channel's flag nibble in ISR/IFCR
func flagShift(index uint32) uint32 {
	return (index << 2) & 0x1C
}

// Resolve computes every register and mask a channel needs without
// touching the bus. Configure calls it before writing anything, which
// makes a bad controller/channel pair fail with no side effects.
func (d *DMA) Resolve(cfg DMAConfig) (*DMAHandle, error) {
	fail := func(reason string, err error) (*DMAHandle, error) {
		return nil, &ConfigError{Controller: cfg.Controller, Channel: cfg.Channel, Reason: reason, Err: err}
	}

	if cfg.Controller != DMA1 && cfg.Controller != DMA2 {
		return fail("", ErrUnknownChannel)
	}
	if cfg.Channel < 1 || cfg.Channel > ChannelsPerController {
		return fail("", ErrUnknownChannel)
	}
	if err := cfg.Validate(); err != nil {
		return fail("", err)
	}

	name := ChannelName(cfg.Controller, cfg.Channel)
	ch, err := d.p.View(name)
	if err != nil {
		return fail(err.Error(), ErrUnknownChannel)
	}

	h := &DMAHandle{config: cfg, name: name, channel: ch, state: StateDisabled}
	for _, f := range []struct {
		reg  *regs.Reg
		name string
	}{{&h.ccr, "CCR"}, {&h.cndtr, "CNDTR"}, {&h.cpar, "CPAR"}, {&h.cmar, "CMAR"}} {
		if *f.reg, err = ch.Reg(f.name); err != nil {
			return fail(err.Error(), ErrUnknownChannel)
		}
	}

	h.index = channelIndex(ch.Base())
	if h.index != uint32(cfg.Channel-1) {
		return fail("channel register at "+hexa(ch.Base()), ErrUnknownChannel)
	}

	ctrl := d.controllers[cfg.Controller-1]
	if h.ifcr, err = ctrl.Reg("IFCR"); err != nil {
		return fail(err.Error(), ErrUnknownChannel)
	}
	h.flagMask = stm32wb.DMA_ISR_GIF1 << flagShift(h.index)

	// Multiplexer channels are contiguous: per-controller base plus index.
	muxBase := d.muxBases[cfg.Controller-1]
	stride := muxBase.Block().Size()
	h.muxChannel = d.muxOffsets[cfg.Controller-1] + h.index
	h.mux = regs.NewView(d.p.Bus(), muxBase.Block(), muxBase.Base()+h.index*stride)
	if h.muxCCR, err = h.mux.Reg("CCR"); err != nil {
		return fail(err.Error(), ErrUnknownChannel)
	}
	h.muxCFR = d.muxCFR
	h.muxMask = 1 << (h.muxChannel & 0x1F)

	h.request = cfg.Request
	if cfg.Direction == MemoryToMemory {
		h.request = RequestMem2Mem
	}

	if h.request.IsGenerator() {
		gen := uint32(h.request - RequestGenerator0)
		h.generator = regs.NewView(d.p.Bus(), d.gen0.Block(), d.gen0.Base()+gen*d.gen0.Block().Size())
		if h.genRGCR, err = h.generator.Reg("RGCR"); err != nil {
			return fail(err.Error(), ErrUnknownChannel)
		}
		h.genRGCFR = d.genRGCFR
		h.genMask = 1 << ((uint32(h.request) - 1) & 3)
		h.hasGenerator = true
	}
	return h, nil
}

// Configure programs a channel's transfer shape and request routing and
// returns its handle in the Configured state.
func (d *DMA) Configure(cfg DMAConfig) (*DMAHandle, error) {
	h, err := d.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	d.Apply(h)
	return h, nil
}

// Apply writes a resolved handle's configuration to the hardware. The
// channel must be disabled; Apply clears EN as part of the CCR modify.
func (d *DMA) Apply(h *DMAHandle) {
	h.ccr.Modify(ccrConfigMask|stm32wb.DMA_CCR_EN, h.config.ccr())
	h.state = StateDisabled
	RecordEvent(EvtDMAConfigure, uint8(h.config.Controller), h.ccr.Addr(), h.config.ccr())

	h.muxCCR.Set(uint32(h.request) & stm32wb.DMAMUX_CxCR_DMAREQ_ID)
	h.muxCFR.Set(h.muxMask)
	RecordEvent(EvtDMAMux, uint8(h.muxChannel), h.muxCCR.Addr(), uint32(h.request))

	if h.hasGenerator {
		h.genRGCR.Set(0)
		h.genRGCFR.Set(h.genMask)
	}

	h.state = StateConfigured
	DebugPrintln("[DMA] " + h.name + " configured ccr=" + hexa(h.config.ccr()) +
		" mux=" + utoa(h.muxChannel) + " req=" + utoa(uint32(h.request)))
}
