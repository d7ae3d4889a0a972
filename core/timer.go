package core

import (
	"siggen/regs"
	"siggen/stm32wb"
)

// TimerDMASource is a DIER bit that turns a timer event into a DMA request
type TimerDMASource uint32

const (
	TimerDMAUpdate  TimerDMASource = stm32wb.TIM_DIER_UDE
	TimerDMACC1     TimerDMASource = stm32wb.TIM_DIER_CC1DE
	TimerDMACC2     TimerDMASource = stm32wb.TIM_DIER_CC2DE
	TimerDMACC3     TimerDMASource = stm32wb.TIM_DIER_CC3DE
	TimerDMACC4     TimerDMASource = stm32wb.TIM_DIER_CC4DE
	TimerDMACOM     TimerDMASource = stm32wb.TIM_DIER_COMDE
	TimerDMATrigger TimerDMASource = stm32wb.TIM_DIER_TDE

	timerDMAMask = TimerDMAUpdate | TimerDMACC1 | TimerDMACC2 | TimerDMACC3 |
		TimerDMACC4 | TimerDMACOM | TimerDMATrigger
)

// CaptureCompareSource returns the DMA request bit of capture/compare
// channel 1..4
func CaptureCompareSource(channel int) (TimerDMASource, error) {
	if channel < 1 || channel > 4 {
		return 0, invalid("timer channel " + itoa(channel))
	}
	return TimerDMACC1 << uint(channel-1), nil
}

// EnableTrigger ORs src into the DIER register of timer. The DMA channel
// fed by the timer must already be running, or requests raised before it
// is armed are dropped.
func EnableTrigger(timer regs.View, src TimerDMASource) error {
	if src == 0 || src&^timerDMAMask != 0 {
		return invalid("timer DMA source " + hexa(uint32(src)))
	}
	dier, err := timer.Reg("DIER")
	if err != nil {
		return err
	}
	dier.SetBits(uint32(src))
	RecordEvent(EvtTriggerEnable, 0, dier.Addr(), uint32(src))
	DebugPrintln("[TIM] " + timer.String() + " DIER |= " + hexa(uint32(src)))
	return nil
}

// timerRequests lists the DMAMUX request line of each timer event we can
// use as a trigger. Channel 0 is the update event.
var timerRequests = map[string][5]Request{
	"TIM1": {
		stm32wb.LL_DMAMUX_REQ_TIM1_UP, stm32wb.LL_DMAMUX_REQ_TIM1_CH1, stm32wb.LL_DMAMUX_REQ_TIM1_CH2,
		stm32wb.LL_DMAMUX_REQ_TIM1_CH3, stm32wb.LL_DMAMUX_REQ_TIM1_CH4,
	},
	"TIM2": {
		stm32wb.LL_DMAMUX_REQ_TIM2_UP, stm32wb.LL_DMAMUX_REQ_TIM2_CH1, stm32wb.LL_DMAMUX_REQ_TIM2_CH2,
		stm32wb.LL_DMAMUX_REQ_TIM2_CH3, stm32wb.LL_DMAMUX_REQ_TIM2_CH4,
	},
	"TIM16": {stm32wb.LL_DMAMUX_REQ_TIM16_UP, stm32wb.LL_DMAMUX_REQ_TIM16_CH1},
	"TIM17": {stm32wb.LL_DMAMUX_REQ_TIM17_UP, stm32wb.LL_DMAMUX_REQ_TIM17_CH1},
}

// TimerRequest returns the DMAMUX request line and DIER source for timer
// channel (0 selects the update event).
func TimerRequest(timer string, channel int) (Request, TimerDMASource, error) {
	lines, ok := timerRequests[timer]
	if !ok {
		return 0, 0, invalid("no DMA request line for timer " + timer)
	}
	if channel < 0 || channel >= len(lines) || (channel > 0 && lines[channel] == 0) {
		return 0, 0, invalid(timer + " has no DMA request for channel " + itoa(channel))
	}
	if channel == 0 {
		return lines[0], TimerDMAUpdate, nil
	}
	src, err := CaptureCompareSource(channel)
	if err != nil {
		return 0, 0, err
	}
	return lines[channel], src, nil
}
