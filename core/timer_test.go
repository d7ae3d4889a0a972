package core

import (
	"errors"
	"testing"

	"siggen/stm32wb"
)

func TestEnableTrigger(t *testing.T) {
	p, bus := newTestPeripherals(t)
	tim, err := p.View("TIM16")
	if err != nil {
		t.Fatalf("View(TIM16) failed: %v", err)
	}
	dier := uint32(stm32wb.TIM16_BASE + 0x0C)
	bus.Poke(dier, stm32wb.TIM_DIER_UIE)

	if err := EnableTrigger(tim, TimerDMACC1); err != nil {
		t.Fatalf("EnableTrigger failed: %v", err)
	}
	if err := EnableTrigger(tim, TimerDMACC1); err != nil {
		t.Fatalf("Second EnableTrigger failed: %v", err)
	}

	if got := bus.Peek(dier); got != stm32wb.TIM_DIER_UIE|stm32wb.TIM_DIER_CC1DE {
		t.Errorf("DIER = 0x%x, want UIE|CC1DE", got)
	}

	for _, src := range []TimerDMASource{0, stm32wb.TIM_DIER_CC1IE, 0x8000} {
		if err := EnableTrigger(tim, src); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Source 0x%x: expected ErrInvalidConfig, got %v", uint32(src), err)
		}
	}
}

func TestTimerRequest(t *testing.T) {
	testCases := []struct {
		timer   string
		channel int
		request Request
		source  TimerDMASource
	}{
		{"TIM16", 1, stm32wb.LL_DMAMUX_REQ_TIM16_CH1, TimerDMACC1},
		{"TIM16", 0, stm32wb.LL_DMAMUX_REQ_TIM16_UP, TimerDMAUpdate},
		{"TIM1", 3, stm32wb.LL_DMAMUX_REQ_TIM1_CH3, TimerDMACC3},
		{"TIM2", 4, stm32wb.LL_DMAMUX_REQ_TIM2_CH4, TimerDMACC4},
		{"TIM17", 1, stm32wb.LL_DMAMUX_REQ_TIM17_CH1, TimerDMACC1},
	}

	for _, tc := range testCases {
		req, src, err := TimerRequest(tc.timer, tc.channel)
		if err != nil {
			t.Errorf("TimerRequest(%s, %d) failed: %v", tc.timer, tc.channel, err)
			continue
		}
		if req != tc.request || src != tc.source {
			t.Errorf("TimerRequest(%s, %d) = 0x%x/0x%x, want 0x%x/0x%x",
				tc.timer, tc.channel, uint32(req), uint32(src), uint32(tc.request), uint32(tc.source))
		}
	}

	for _, bad := range []struct {
		timer   string
		channel int
	}{{"TIM16", 2}, {"TIM1", 5}, {"TIM1", -1}, {"TIM5", 1}} {
		if _, _, err := TimerRequest(bad.timer, bad.channel); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("TimerRequest(%s, %d): expected ErrInvalidConfig, got %v", bad.timer, bad.channel, err)
		}
	}
}
