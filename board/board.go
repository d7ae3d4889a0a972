// Package board is the board-support layer of the Nucleo-WB55: it routes
// the PWM pin, runs the PWM timer and sets the time base of the trigger
// timer. The DMA path never touches these registers; it only receives the
// Output handle.
package board

import (
	"strconv"

	"siggen/config"
	"siggen/core"
	"siggen/regs"
	"siggen/stm32wb"
)

// Error is a board setup failure. It matches core.ErrInvalidConfig.
type Error struct {
	What string
}

func (e *Error) Error() string {
	return "board: " + e.What
}

func (e *Error) Unwrap() error {
	return core.ErrInvalidConfig
}

func fail(what string) error {
	return &Error{What: what}
}

// Output is the configured PWM channel handed to the orchestrator
type Output struct {
	Timer   regs.View
	Channel int
	Period  uint32       // Compare counts per carrier cycle, one per level
	Dest    core.Address // Compare register the DMA writes
}

// Board configures timers and pins through the register table
type Board struct {
	p      *core.Peripherals
	clocks *core.ClockGate
}

// New binds the board layer to p. No register is touched.
func New(p *core.Peripherals) (*Board, error) {
	rcc, err := p.View("RCC")
	if err != nil {
		return nil, err
	}
	clocks, err := core.NewClockGate(rcc)
	if err != nil {
		return nil, err
	}
	return &Board{p: p, clocks: clocks}, nil
}

// Setup prepares everything the DMA stream needs from the board: the pin
// on its timer function, the PWM carrier and the trigger time base. The
// trigger timer counts but raises no DMA request until the orchestrator
// sets its DIER bit.
func Setup(p *core.Peripherals, cfg *config.SignalConfig) (*Output, error) {
	b, err := New(p)
	if err != nil {
		return nil, err
	}
	if err := b.ConfigurePin(cfg.PWM.Pin, cfg.PWM.Timer, cfg.PWM.Channel); err != nil {
		return nil, err
	}
	out, err := b.ConfigurePWM(cfg.PWM, config.TimerClock, 0)
	if err != nil {
		return nil, err
	}
	if out.Period < uint32(cfg.Levels) {
		return nil, fail("pwm period " + strconv.Itoa(int(out.Period)) + " below " + strconv.Itoa(cfg.Levels) + " levels")
	}
	if err := b.ConfigureTrigger(cfg.Trigger, config.TimerClock, cfg.SampleRate()); err != nil {
		return nil, err
	}
	return out, nil
}

// timeBase splits counts into prescaler and auto-reload values. 16-bit
// timers get the smallest prescaler that keeps ARR in range.
func timeBase(counts uint32, wide bool) (psc, arr uint32) {
	if counts == 0 {
		return 0, 0
	}
	if wide || counts <= 0x10000 {
		return 0, counts - 1
	}
	psc = (counts - 1) / 0x10000
	return psc, counts/(psc+1) - 1
}

// wideTimers have a 32-bit counter
var wideTimers = map[string]bool{"TIM2": true}

// breakTimers gate their outputs with BDTR.MOE
var breakTimers = map[string]bool{"TIM1": true, "TIM16": true, "TIM17": true}

func (b *Board) timer(name string) (regs.View, error) {
	v, err := b.p.View(name)
	if err != nil {
		return regs.View{}, err
	}
	if v.Block() != stm32wb.TIM_TypeDef {
		return regs.View{}, fail(name + " is not a timer")
	}
	return v, nil
}

// ccmr returns the mode register and bit shift of a compare channel
func ccmr(channel int) (string, uint32) {
	field := "CCMR1"
	if channel > 2 {
		field = "CCMR2"
	}
	var shift uint32
	if channel%2 == 0 {
		shift = 8
	}
	return field, shift
}

// ConfigurePWM runs timer cfg.Timer as an edge-aligned PWM on cfg.Channel
// at cfg.Frequency with compare value initial. The counter is started
// last.
func (b *Board) ConfigurePWM(cfg config.PWMConfig, clock, initial uint32) (*Output, error) {
	if cfg.Channel < 1 || cfg.Channel > 4 {
		return nil, fail("pwm channel " + strconv.Itoa(cfg.Channel) + " outside 1..4")
	}
	if cfg.Frequency == 0 || cfg.Frequency > clock {
		return nil, fail("pwm frequency " + strconv.Itoa(int(cfg.Frequency)))
	}
	tim, err := b.timer(cfg.Timer)
	if err != nil {
		return nil, err
	}
	if err := b.clocks.EnableTimer(cfg.Timer); err != nil {
		return nil, err
	}

	psc, arr := timeBase(clock/cfg.Frequency, wideTimers[cfg.Timer])
	ccrField := "CCR" + strconv.Itoa(cfg.Channel)
	modeField, shift := ccmr(cfg.Channel)

	tim.MustReg("CR1").ClearBits(stm32wb.TIM_CR1_CEN)
	tim.MustReg("PSC").Set(psc)
	tim.MustReg("ARR").Set(arr)
	tim.MustReg(modeField).Modify(
		(stm32wb.TIM_CCMR1_OC1M|stm32wb.TIM_CCMR1_OC1PE|stm32wb.TIM_CCMR1_CC1S)<<shift,
		(stm32wb.TIM_CCMR1_OC1M_1|stm32wb.TIM_CCMR1_OC1M_2|stm32wb.TIM_CCMR1_OC1PE)<<shift,
	)
	tim.MustReg(ccrField).Set(initial)
	tim.MustReg("CCER").SetBits(stm32wb.TIM_CCER_CC1E << (4 * uint32(cfg.Channel-1)))
	if breakTimers[cfg.Timer] {
		tim.MustReg("BDTR").SetBits(stm32wb.TIM_BDTR_MOE)
	}
	tim.MustReg("CR1").SetBits(stm32wb.TIM_CR1_ARPE)
	tim.MustReg("EGR").Set(stm32wb.TIM_EGR_UG)
	tim.MustReg("CR1").SetBits(stm32wb.TIM_CR1_CEN)

	dest, err := tim.Addr(ccrField)
	if err != nil {
		return nil, err
	}
	core.DebugPrintln("[BOARD] " + cfg.Timer + " pwm ch" + strconv.Itoa(cfg.Channel) + " arr=" + strconv.Itoa(int(arr)))
	return &Output{
		Timer:   tim,
		Channel: cfg.Channel,
		Period:  arr + 1,
		Dest:    core.Address(dest),
	}, nil
}

// ConfigureTrigger sets the time base of the trigger timer so it raises
// one event per sample. A compare channel is left in frozen output mode
// with its match in mid period.
func (b *Board) ConfigureTrigger(cfg config.TriggerConfig, clock, rate uint32) error {
	if rate == 0 || rate > clock {
		return fail("sample rate " + strconv.Itoa(int(rate)))
	}
	if cfg.Channel < 0 || cfg.Channel > 4 {
		return fail("trigger channel " + strconv.Itoa(cfg.Channel))
	}
	tim, err := b.timer(cfg.Timer)
	if err != nil {
		return err
	}
	if err := b.clocks.EnableTimer(cfg.Timer); err != nil {
		return err
	}

	psc, arr := timeBase(clock/rate, wideTimers[cfg.Timer])

	tim.MustReg("CR1").ClearBits(stm32wb.TIM_CR1_CEN)
	tim.MustReg("PSC").Set(psc)
	tim.MustReg("ARR").Set(arr)
	if cfg.Channel > 0 {
		modeField, shift := ccmr(cfg.Channel)
		tim.MustReg(modeField).ClearBits((stm32wb.TIM_CCMR1_OC1M | stm32wb.TIM_CCMR1_CC1S) << shift)
		tim.MustReg("CCR" + strconv.Itoa(cfg.Channel)).Set(arr / 2)
	}
	tim.MustReg("EGR").Set(stm32wb.TIM_EGR_UG)
	tim.MustReg("CR1").SetBits(stm32wb.TIM_CR1_CEN)

	core.DebugPrintln("[BOARD] " + cfg.Timer + " trigger psc=" + strconv.Itoa(int(psc)) + " arr=" + strconv.Itoa(int(arr)))
	return nil
}
