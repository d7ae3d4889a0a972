package config

import (
	"errors"
	"testing"

	"siggen/core"
	"siggen/stm32wb"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	if c.SampleRate() != 1_000_000 {
		t.Errorf("Expected 1 MHz sample rate, got %d", c.SampleRate())
	}
	if c.DestinationField() != "CCR3" {
		t.Errorf("Expected CCR3, got %s", c.DestinationField())
	}
	addr, err := c.DestinationAddr()
	if err != nil || addr != 0x40012C3C {
		t.Errorf("DestinationAddr = 0x%08x, %v; want 0x40012C3C", addr, err)
	}

	dma, err := c.DMAConfig()
	if err != nil {
		t.Fatalf("DMAConfig failed: %v", err)
	}
	want := core.DMAConfig{
		Controller:  core.DMA1,
		Channel:     1,
		Request:     stm32wb.LL_DMAMUX_REQ_TIM16_CH1,
		Direction:   core.MemoryToPeriph,
		PeriphInc:   core.PeriphIncDisable,
		MemInc:      core.MemIncEnable,
		PeriphAlign: core.PeriphAlignWord,
		MemAlign:    core.MemAlignByte,
		Mode:        core.ModeCircular,
		Priority:    core.PriorityHigh,
	}
	if dma != want {
		t.Errorf("DMAConfig = %+v, want %+v", dma, want)
	}

	sig, err := c.Signal()
	if err != nil {
		t.Fatalf("Signal failed: %v", err)
	}
	if sig.TriggerTimer != "TIM16" || sig.TriggerSource != core.TimerDMACC1 {
		t.Errorf("Unexpected trigger: %s 0x%x", sig.TriggerTimer, uint32(sig.TriggerSource))
	}
	if len(sig.Timers) != 2 || sig.Timers[0] != "TIM1" || sig.Timers[1] != "TIM16" {
		t.Errorf("Unexpected timer clocks: %v", sig.Timers)
	}

	wave, err := c.Waveform()
	if err != nil || len(wave) != 25 || wave[0] != 32 {
		t.Errorf("Waveform = %v, %v", wave, err)
	}
}

func TestLoadConfig(t *testing.T) {
	data := []byte(`{
		"Frequency": 10000,
		"Samples": 50,
		"PWM": {"Timer": "TIM2", "Channel": 1, "Pin": "PA0"},
		"Trigger": {"Timer": "TIM17", "Channel": 0},
		"DMA": {"Controller": 2, "Channel": 4, "Priority": "very_high"}
	}`)

	c, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if c.Levels != 64 || c.PWM.Frequency != 1_000_000 {
		t.Errorf("Defaults not applied: levels=%d pwm=%d", c.Levels, c.PWM.Frequency)
	}
	if c.Trigger.Channel != 0 {
		t.Errorf("Explicit update trigger overwritten: %d", c.Trigger.Channel)
	}

	dma, err := c.DMAConfig()
	if err != nil {
		t.Fatalf("DMAConfig failed: %v", err)
	}
	if dma.Controller != core.DMA2 || dma.Channel != 4 || dma.Priority != core.PriorityVeryHigh {
		t.Errorf("Unexpected DMA config: %+v", dma)
	}
	if dma.Request != stm32wb.LL_DMAMUX_REQ_TIM17_UP {
		t.Errorf("Expected TIM17_UP request, got 0x%x", uint32(dma.Request))
	}

	addr, _ := c.DestinationAddr()
	if addr != stm32wb.TIM2_BASE+0x34 {
		t.Errorf("Expected TIM2.CCR1, got 0x%08x", addr)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want error
	}{
		{"too many samples", `{"Samples": 70000}`, core.ErrInvalidConfig},
		{"one level", `{"Levels": 1}`, core.ErrInvalidConfig},
		{"rate above timer clock", `{"Frequency": 4000000, "Samples": 25}`, core.ErrInvalidConfig},
		{"pwm too coarse", `{"PWM": {"Frequency": 2000000}}`, core.ErrInvalidConfig},
		{"unknown pwm timer", `{"PWM": {"Timer": "TIM5", "Channel": 1}}`, core.ErrInvalidConfig},
		{"pwm channel", `{"PWM": {"Timer": "TIM1", "Channel": 6}}`, core.ErrInvalidConfig},
		{"shared timer", `{"Trigger": {"Timer": "TIM1", "Channel": 1}}`, core.ErrInvalidConfig},
		{"trigger channel", `{"Trigger": {"Timer": "TIM16", "Channel": 2}}`, core.ErrInvalidConfig},
		{"dma controller", `{"DMA": {"Controller": 3}}`, core.ErrUnknownChannel},
		{"dma channel", `{"DMA": {"Channel": 8}}`, core.ErrUnknownChannel},
		{"priority", `{"DMA": {"Priority": "urgent"}}`, core.ErrInvalidConfig},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tc.json))
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := LoadConfig([]byte(`{"Samples": "many"}`)); err == nil {
		t.Error("Expected JSON type error")
	}
}
