package board

import (
	"strconv"

	"siggen/core"
	"siggen/regs"
	"siggen/stm32wb"
)

// AFR[2] is an array in the CMSIS header, so the generated GPIO block
// reserves it. The board lays the two words out itself.
var afrBlock = regs.MustBlock("GPIO_AFR",
	regs.Field("AFRL", 0x00),
	regs.Field("AFRH", 0x04),
)

const afrOffset = 0x20

type pinFunction struct {
	timer   string
	channel int
	af      uint32
}

// pinFunctions lists the timer outputs of the WB55 pins on the Nucleo
// headers
var pinFunctions = map[string]pinFunction{
	"PA0":  {"TIM2", 1, 1},
	"PA1":  {"TIM2", 2, 1},
	"PA2":  {"TIM2", 3, 1},
	"PA3":  {"TIM2", 4, 1},
	"PA5":  {"TIM2", 1, 1},
	"PA6":  {"TIM16", 1, 14},
	"PA7":  {"TIM17", 1, 14},
	"PA8":  {"TIM1", 1, 1},
	"PA9":  {"TIM1", 2, 1},
	"PA10": {"TIM1", 3, 1},
	"PA11": {"TIM1", 4, 1},
	"PA15": {"TIM2", 1, 1},
	"PB8":  {"TIM16", 1, 14},
	"PB9":  {"TIM17", 1, 14},
}

// ParsePin splits a pin name like "PA10" into its GPIO instance and number
func ParsePin(name string) (port string, index uint32, pin uint32, err error) {
	if len(name) < 3 || name[0] != 'P' || name[1] < 'A' || name[1] > 'C' {
		return "", 0, 0, fail("bad pin name " + strconv.Quote(name))
	}
	n, convErr := strconv.Atoi(name[2:])
	if convErr != nil || n < 0 || n > 15 {
		return "", 0, 0, fail("bad pin name " + strconv.Quote(name))
	}
	return "GPIO" + name[1:2], uint32(name[1] - 'A'), uint32(n), nil
}

// ConfigurePin switches pin to the alternate function carrying the given
// timer channel. The function is selected before the pin leaves its
// previous mode.
func (b *Board) ConfigurePin(pin, timer string, channel int) error {
	fn, ok := pinFunctions[pin]
	if !ok || fn.timer != timer || fn.channel != channel {
		return fail(pin + " does not carry " + timer + " CH" + strconv.Itoa(channel))
	}
	port, index, n, err := ParsePin(pin)
	if err != nil {
		return err
	}

	gpio, err := b.p.View(port)
	if err != nil {
		return err
	}
	if err := b.clocks.Enable(core.BusAHB2, stm32wb.RCC_AHB2ENR_GPIOAEN<<index); err != nil {
		return err
	}

	afr := regs.NewView(b.p.Bus(), afrBlock, gpio.Base()+afrOffset)
	afrField := "AFRL"
	if n >= 8 {
		afrField = "AFRH"
	}
	afShift := 4 * (n % 8)
	afr.MustReg(afrField).Modify(stm32wb.GPIO_AFRL_AFSEL0<<afShift, fn.af<<afShift)

	gpio.MustReg("OSPEEDR").SetBits(stm32wb.GPIO_OSPEEDR_OSPEED0 << (2 * n))
	gpio.MustReg("MODER").Modify(stm32wb.GPIO_MODER_MODE0<<(2*n), stm32wb.GPIO_MODER_MODE0_1<<(2*n))

	core.DebugPrintln("[BOARD] " + pin + " AF" + strconv.Itoa(int(fn.af)) + " " + timer + " CH" + strconv.Itoa(channel))
	return nil
}
