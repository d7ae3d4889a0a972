package core

import "siggen/regs"

// Signal describes a waveform output driven by a circular DMA transfer
// into a timer's compare register.
type Signal struct {
	// DMA channel shape. Direction and Mode are forced to
	// memory-to-peripheral and circular.
	DMA DMAConfig

	// Timer whose event raises the DMA request, and the event
	TriggerTimer  string
	TriggerSource TimerDMASource

	// Timers whose clocks must run (the PWM timer and the trigger timer)
	Timers []string
}

// SignalGenerator composes the clock gate, the DMA channel and the timer
// trigger. All names are resolved by NewSignalGenerator; Start then only
// writes registers, in the order the hardware requires.
type SignalGenerator struct {
	signal  Signal
	clocks  *ClockGate
	dma     *DMA
	handle  *DMAHandle
	trigger regs.View
}

// NewSignalGenerator resolves everything sig refers to without touching
// the hardware.
func NewSignalGenerator(p *Peripherals, sig Signal) (*SignalGenerator, error) {
	sig.DMA.Direction = MemoryToPeriph
	sig.DMA.Mode = ModeCircular

	rcc, err := p.View("RCC")
	if err != nil {
		return nil, err
	}
	clocks, err := NewClockGate(rcc)
	if err != nil {
		return nil, err
	}
	dma, err := NewDMA(p)
	if err != nil {
		return nil, err
	}
	handle, err := dma.Resolve(sig.DMA)
	if err != nil {
		return nil, err
	}
	trigger, err := p.View(sig.TriggerTimer)
	if err != nil {
		return nil, err
	}
	if _, err := trigger.Reg("DIER"); err != nil {
		return nil, err
	}
	if sig.TriggerSource == 0 || sig.TriggerSource&^timerDMAMask != 0 {
		return nil, invalid("timer DMA source " + hexa(uint32(sig.TriggerSource)))
	}
	for _, name := range sig.Timers {
		if _, ok := timerClocks[name]; !ok {
			return nil, invalid("no clock gate for " + name)
		}
	}

	return &SignalGenerator{
		signal:  sig,
		clocks:  clocks,
		dma:     dma,
		handle:  handle,
		trigger: trigger,
	}, nil
}

// Handle returns the DMA channel handle
func (g *SignalGenerator) Handle() *DMAHandle {
	return g.handle
}

// Signal returns the effective signal description
func (g *SignalGenerator) Signal() Signal {
	return g.signal
}

// Start streams wave into dst forever:
//
//  1. enable the DMAMUX1, DMA controller and timer clocks
//  2. configure the DMA channel
//  3. start a circular transfer of wave into dst
//  4. enable the trigger timer's DMA request
func (g *SignalGenerator) Start(wave Waveform, dst Location) error {
	if len(wave) == 0 || len(wave) > MaxTransferLength {
		return invalid("waveform length " + itoa(len(wave)))
	}
	if dst == nil {
		return invalid("no destination register")
	}

	if err := g.clocks.EnableDMAMUX1(); err != nil {
		return err
	}
	if err := g.clocks.EnableDMA(g.signal.DMA.Controller); err != nil {
		return err
	}
	for _, name := range g.signal.Timers {
		if err := g.clocks.EnableTimer(name); err != nil {
			return err
		}
	}

	g.dma.Apply(g.handle)

	if err := g.dma.Start(g.handle, MemoryToPeriph, Buffer(wave), dst, uint32(len(wave))); err != nil {
		return err
	}

	return EnableTrigger(g.trigger, g.signal.TriggerSource)
}
