package core

import (
	"siggen/regs"
	"siggen/stm32wb"
)

// BusGroup selects one of the RCC peripheral clock enable registers.
type BusGroup uint8

const (
	BusAHB1 BusGroup = iota
	BusAHB2
	BusAHB3
	BusAPB1L
	BusAPB1H
	BusAPB2
	busGroupCount
)

var busGroupFields = [busGroupCount]string{
	BusAHB1:  "AHB1ENR",
	BusAHB2:  "AHB2ENR",
	BusAHB3:  "AHB3ENR",
	BusAPB1L: "APB1ENR1",
	BusAPB1H: "APB1ENR2",
	BusAPB2:  "APB2ENR",
}

func (g BusGroup) String() string {
	if g >= busGroupCount {
		return "BusGroup(" + itoa(int(g)) + ")"
	}
	return busGroupFields[g]
}

// ClockGate turns peripheral clocks on. A peripheral's registers do not
// respond until its enable bit is set.
type ClockGate struct {
	enr [busGroupCount]regs.Reg
}

// NewClockGate resolves the enable registers of rcc. It performs no bus
// access.
func NewClockGate(rcc regs.View) (*ClockGate, error) {
	g := &ClockGate{}
	for i, field := range busGroupFields {
		r, err := rcc.Reg(field)
		if err != nil {
			return nil, err
		}
		g.enr[i] = r
	}
	return g, nil
}

// Enable sets bit in the enable register of group, leaving other bits
// untouched. Enabling an already running clock has no further effect.
func (g *ClockGate) Enable(group BusGroup, bit uint32) error {
	if group >= busGroupCount {
		return invalid("clock group " + group.String())
	}
	if bit == 0 {
		return invalid("empty clock enable mask for " + group.String())
	}
	r := g.enr[group]
	r.SetBits(bit)
	RecordEvent(EvtClockEnable, uint8(group), r.Addr(), bit)
	return nil
}

// Enabled reports whether every bit of bit is set in group
func (g *ClockGate) Enabled(group BusGroup, bit uint32) bool {
	if group >= busGroupCount {
		return false
	}
	return g.enr[group].HasBits(bit)
}

// EnableDMAMUX1 starts the request multiplexer clock
func (g *ClockGate) EnableDMAMUX1() error {
	return g.Enable(BusAHB1, stm32wb.RCC_AHB1ENR_DMAMUX1EN)
}

// EnableDMA starts the clock of the given DMA controller
func (g *ClockGate) EnableDMA(c Controller) error {
	switch c {
	case DMA1:
		return g.Enable(BusAHB1, stm32wb.RCC_AHB1ENR_DMA1EN)
	case DMA2:
		return g.Enable(BusAHB1, stm32wb.RCC_AHB1ENR_DMA2EN)
	}
	return invalid("DMA controller " + utoa(uint32(c)))
}

// timerClocks maps timer instances to their enable bits
var timerClocks = map[string]struct {
	group BusGroup
	bit   uint32
}{
	"TIM1":  {BusAPB2, stm32wb.RCC_APB2ENR_TIM1EN},
	"TIM2":  {BusAPB1L, stm32wb.RCC_APB1ENR1_TIM2EN},
	"TIM16": {BusAPB2, stm32wb.RCC_APB2ENR_TIM16EN},
	"TIM17": {BusAPB2, stm32wb.RCC_APB2ENR_TIM17EN},
}

// EnableTimer starts the clock of a timer instance by name
func (g *ClockGate) EnableTimer(name string) error {
	c, ok := timerClocks[name]
	if !ok {
		return invalid("no clock gate for " + name)
	}
	return g.Enable(c.group, c.bit)
}
