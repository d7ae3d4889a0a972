package board

import (
	"errors"
	"testing"

	"siggen/config"
	"siggen/core"
	"siggen/regs"
	"siggen/stm32wb"
)

func newTestBoard(t *testing.T) (*core.Peripherals, *regs.SimBus) {
	t.Helper()
	bus := regs.NewSimBus()
	bus.Poke(stm32wb.DBGMCU_BASE, stm32wb.DeviceID)
	p, err := core.NewPeripherals(bus, stm32wb.Table)
	if err != nil {
		t.Fatalf("NewPeripherals failed: %v", err)
	}
	bus.ClearLog()
	return p, bus
}

func TestSetupDefault(t *testing.T) {
	p, bus := newTestBoard(t)
	cfg := config.DefaultConfig()

	out, err := Setup(p, cfg)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if out.Dest != 0x40012C3C || out.Channel != 3 || out.Period != 64 {
		t.Errorf("Unexpected output: dest=0x%08x ch=%d period=%d", uint32(out.Dest), out.Channel, out.Period)
	}

	tim1 := uint32(stm32wb.TIM1_BASE)
	tim16 := uint32(stm32wb.TIM16_BASE)
	gpioa := uint32(stm32wb.GPIOA_BASE)

	testCases := []struct {
		name string
		addr uint32
		want uint32
	}{
		{"RCC.AHB2ENR", stm32wb.RCC_BASE + 0x4C, stm32wb.RCC_AHB2ENR_GPIOAEN},
		{"RCC.APB2ENR", stm32wb.RCC_BASE + 0x60, stm32wb.RCC_APB2ENR_TIM1EN | stm32wb.RCC_APB2ENR_TIM16EN},
		{"GPIOA.MODER", gpioa + 0x00, 0x2 << 20},
		{"GPIOA.OSPEEDR", gpioa + 0x08, 0x3 << 20},
		{"GPIOA.AFRH", gpioa + 0x24, 1 << 8},
		{"TIM1.PSC", tim1 + 0x28, 0},
		{"TIM1.ARR", tim1 + 0x2C, 63},
		{"TIM1.CCMR2", tim1 + 0x1C, 0x68},
		{"TIM1.CCER", tim1 + 0x20, stm32wb.TIM_CCER_CC3E},
		{"TIM1.BDTR", tim1 + 0x44, stm32wb.TIM_BDTR_MOE},
		{"TIM1.CR1", tim1 + 0x00, stm32wb.TIM_CR1_ARPE | stm32wb.TIM_CR1_CEN},
		{"TIM16.ARR", tim16 + 0x2C, 63},
		{"TIM16.CCR1", tim16 + 0x34, 31},
		{"TIM16.CR1", tim16 + 0x00, stm32wb.TIM_CR1_CEN},
		{"TIM16.DIER", tim16 + 0x0C, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bus.Peek(tc.addr); got != tc.want {
				t.Errorf("Expected 0x%08x, got 0x%08x", tc.want, got)
			}
		})
	}
}

func TestSetupOrdering(t *testing.T) {
	p, bus := newTestBoard(t)
	if _, err := Setup(p, config.DefaultConfig()); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	gpioClock, firstGPIO, tim1Start, lastTIM1 := -1, -1, -1, -1
	for i, w := range bus.Writes() {
		switch {
		case w.Addr == stm32wb.RCC_BASE+0x4C:
			gpioClock = i
		case w.Addr >= stm32wb.GPIOA_BASE && w.Addr < stm32wb.GPIOA_BASE+0x400 && firstGPIO < 0:
			firstGPIO = i
		case w.Addr == stm32wb.TIM1_BASE && w.Value&stm32wb.TIM_CR1_CEN != 0:
			tim1Start = i
		}
		if w.Addr >= stm32wb.TIM1_BASE && w.Addr < stm32wb.TIM1_BASE+0x400 {
			lastTIM1 = i
		}
	}

	if gpioClock < 0 || !(gpioClock < firstGPIO) {
		t.Errorf("GPIO written at %d before its clock at %d", firstGPIO, gpioClock)
	}
	if tim1Start != lastTIM1 {
		t.Errorf("TIM1 counter started at %d, last TIM1 write at %d", tim1Start, lastTIM1)
	}
}

func TestTimeBase(t *testing.T) {
	testCases := []struct {
		counts   uint32
		wide     bool
		psc, arr uint32
	}{
		{64, false, 0, 63},
		{0x10000, false, 0, 0xFFFF},
		{640000, false, 9, 63999},
		{640000, true, 0, 639999},
		{0, false, 0, 0},
	}
	for _, tc := range testCases {
		psc, arr := timeBase(tc.counts, tc.wide)
		if psc != tc.psc || arr != tc.arr {
			t.Errorf("timeBase(%d, %v) = %d, %d; want %d, %d", tc.counts, tc.wide, psc, arr, tc.psc, tc.arr)
		}
	}
}

func TestConfigureTriggerUpdate(t *testing.T) {
	p, bus := newTestBoard(t)
	b, err := New(p)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := b.ConfigureTrigger(config.TriggerConfig{Timer: "TIM17", Channel: 0}, config.TimerClock, 100); err != nil {
		t.Fatalf("ConfigureTrigger failed: %v", err)
	}

	base := uint32(stm32wb.TIM17_BASE)
	if psc, arr := bus.Peek(base+0x28), bus.Peek(base+0x2C); psc != 9 || arr != 63999 {
		t.Errorf("Expected psc=9 arr=63999, got psc=%d arr=%d", psc, arr)
	}
	if ccr := bus.Peek(base + 0x34); ccr != 0 {
		t.Errorf("Update trigger should leave CCR1 alone, got %d", ccr)
	}
}

func TestConfigurePinRejects(t *testing.T) {
	testCases := []struct {
		name    string
		pin     string
		timer   string
		channel int
	}{
		{"wrong channel", "PA10", "TIM1", 2},
		{"wrong timer", "PA10", "TIM2", 3},
		{"no timer function", "PA4", "TIM1", 1},
		{"bad name", "X10", "TIM1", 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, bus := newTestBoard(t)
			b, _ := New(p)
			err := b.ConfigurePin(tc.pin, tc.timer, tc.channel)
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if n := len(bus.Writes()); n != 0 {
				t.Errorf("Expected no writes, got %d", n)
			}
		})
	}
}

func TestParsePin(t *testing.T) {
	port, index, pin, err := ParsePin("PB9")
	if err != nil || port != "GPIOB" || index != 1 || pin != 9 {
		t.Errorf("ParsePin(PB9) = %s %d %d %v", port, index, pin, err)
	}
	for _, bad := range []string{"", "PA", "PD1", "PA16", "PAx"} {
		if _, _, _, err := ParsePin(bad); err == nil {
			t.Errorf("ParsePin(%q): expected error", bad)
		}
	}
}

func TestSetupFeedsGenerator(t *testing.T) {
	p, bus := newTestBoard(t)
	cfg := config.DefaultConfig()

	out, err := Setup(p, cfg)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	sig, err := cfg.Signal()
	if err != nil {
		t.Fatalf("Signal failed: %v", err)
	}
	gen, err := core.NewSignalGenerator(p, sig)
	if err != nil {
		t.Fatalf("NewSignalGenerator failed: %v", err)
	}
	wave, _ := cfg.Waveform()
	if err := gen.Start(wave, out.Dest); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if cpar := bus.Peek(stm32wb.DMA1_Channel1_BASE + 0x08); cpar != uint32(out.Dest) {
		t.Errorf("CPAR = 0x%08x, want 0x%08x", cpar, uint32(out.Dest))
	}
	if dier := bus.Peek(stm32wb.TIM16_BASE + 0x0C); dier != stm32wb.TIM_DIER_CC1DE {
		t.Errorf("TIM16 DIER = 0x%x, want CC1DE", dier)
	}
}
