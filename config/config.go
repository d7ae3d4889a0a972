package config

import (
	"encoding/json"
	"fmt"

	"siggen/core"
	"siggen/stm32wb"
)

// TimerClock is the timer kernel clock with the system running at 64 MHz
const TimerClock = 64_000_000

var priorities = map[string]core.Priority{
	"low":       core.PriorityLow,
	"medium":    core.PriorityMedium,
	"high":      core.PriorityHigh,
	"very_high": core.PriorityVeryHigh,
}

// LoadConfig parses a JSON configuration and returns a validated
// SignalConfig
func LoadConfig(jsonData []byte) (*SignalConfig, error) {
	var config SignalConfig

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyDefaults fills in missing configuration values with the values of
// the reference board: a 40 kHz sine on PA10 (TIM1 CH3) paced by TIM16 CH1
func applyDefaults(config *SignalConfig) {
	if config.Frequency == 0 {
		config.Frequency = 40_000
	}
	if config.Samples == 0 {
		config.Samples = 25
	}
	if config.Levels == 0 {
		config.Levels = 64
	}

	if config.PWM.Timer == "" {
		config.PWM.Timer = "TIM1"
		if config.PWM.Channel == 0 {
			config.PWM.Channel = 3
		}
		if config.PWM.Pin == "" {
			config.PWM.Pin = "PA10"
		}
	}
	if config.PWM.Frequency == 0 {
		config.PWM.Frequency = 1_000_000
	}

	if config.Trigger.Timer == "" {
		config.Trigger.Timer = "TIM16"
		if config.Trigger.Channel == 0 {
			config.Trigger.Channel = 1
		}
	}

	if config.DMA.Controller == 0 {
		config.DMA.Controller = 1
	}
	if config.DMA.Channel == 0 {
		config.DMA.Channel = 1
	}
	if config.DMA.Priority == "" {
		config.DMA.Priority = "high"
	}
}

// DefaultConfig returns the configuration of the reference board
func DefaultConfig() *SignalConfig {
	config := &SignalConfig{}
	applyDefaults(config)
	return config
}

// SampleRate returns the DMA request rate: one table entry per request
func (c *SignalConfig) SampleRate() uint32 {
	return c.Frequency * uint32(c.Samples)
}

// DestinationField returns the compare register the DMA writes
func (c *SignalConfig) DestinationField() string {
	return fmt.Sprintf("CCR%d", c.PWM.Channel)
}

// Validate checks ranges and that every named peripheral exists on the
// device
func (c *SignalConfig) Validate() error {
	if c.Frequency == 0 {
		return fmt.Errorf("config: frequency must be positive: %w", core.ErrInvalidConfig)
	}
	if c.Samples < 1 || c.Samples > core.MaxTransferLength {
		return fmt.Errorf("config: samples %d outside 1..%d: %w", c.Samples, core.MaxTransferLength, core.ErrInvalidConfig)
	}
	if c.Levels < 2 || c.Levels > core.MaxLevels {
		return fmt.Errorf("config: levels %d outside 2..%d: %w", c.Levels, core.MaxLevels, core.ErrInvalidConfig)
	}

	rate := uint64(c.Frequency) * uint64(c.Samples)
	if rate > TimerClock {
		return fmt.Errorf("config: sample rate %d Hz exceeds timer clock %d Hz: %w", rate, TimerClock, core.ErrInvalidConfig)
	}

	if c.PWM.Frequency == 0 || c.PWM.Frequency > TimerClock {
		return fmt.Errorf("config: pwm frequency %d Hz: %w", c.PWM.Frequency, core.ErrInvalidConfig)
	}
	if counts := TimerClock / c.PWM.Frequency; counts < uint32(c.Levels) {
		return fmt.Errorf("config: pwm resolution %d counts below %d levels: %w", counts, c.Levels, core.ErrInvalidConfig)
	}
	if c.PWM.Channel < 1 || c.PWM.Channel > 4 {
		return fmt.Errorf("config: pwm channel %d outside 1..4: %w", c.PWM.Channel, core.ErrInvalidConfig)
	}
	pwm, ok := stm32wb.Table.Lookup(c.PWM.Timer)
	if !ok || pwm.Block != stm32wb.TIM_TypeDef {
		return fmt.Errorf("config: pwm timer %q: %w", c.PWM.Timer, core.ErrInvalidConfig)
	}
	if !pwm.Block.Has(c.DestinationField()) {
		return fmt.Errorf("config: %s has no %s: %w", c.PWM.Timer, c.DestinationField(), core.ErrInvalidConfig)
	}

	if c.Trigger.Timer == c.PWM.Timer {
		return fmt.Errorf("config: trigger and pwm share %s: %w", c.Trigger.Timer, core.ErrInvalidConfig)
	}
	if _, _, err := core.TimerRequest(c.Trigger.Timer, c.Trigger.Channel); err != nil {
		return fmt.Errorf("config: trigger: %w", err)
	}

	if c.DMA.Controller != 1 && c.DMA.Controller != 2 {
		return fmt.Errorf("config: dma controller %d: %w", c.DMA.Controller, core.ErrUnknownChannel)
	}
	if c.DMA.Channel < 1 || c.DMA.Channel > core.ChannelsPerController {
		return fmt.Errorf("config: dma channel %d: %w", c.DMA.Channel, core.ErrUnknownChannel)
	}
	if _, ok := priorities[c.DMA.Priority]; !ok {
		return fmt.Errorf("config: dma priority %q: %w", c.DMA.Priority, core.ErrInvalidConfig)
	}
	return nil
}

// DMAConfig returns the channel configuration streaming bytes from the
// table into a 32-bit compare register
func (c *SignalConfig) DMAConfig() (core.DMAConfig, error) {
	request, _, err := core.TimerRequest(c.Trigger.Timer, c.Trigger.Channel)
	if err != nil {
		return core.DMAConfig{}, err
	}
	priority, ok := priorities[c.DMA.Priority]
	if !ok {
		return core.DMAConfig{}, fmt.Errorf("config: dma priority %q: %w", c.DMA.Priority, core.ErrInvalidConfig)
	}
	return core.DMAConfig{
		Controller:  core.Controller(c.DMA.Controller),
		Channel:     uint8(c.DMA.Channel),
		Request:     request,
		Direction:   core.MemoryToPeriph,
		PeriphInc:   core.PeriphIncDisable,
		MemInc:      core.MemIncEnable,
		PeriphAlign: core.PeriphAlignWord,
		MemAlign:    core.MemAlignByte,
		Mode:        core.ModeCircular,
		Priority:    priority,
	}, nil
}

// Signal returns the orchestrator description of the configuration
func (c *SignalConfig) Signal() (core.Signal, error) {
	dma, err := c.DMAConfig()
	if err != nil {
		return core.Signal{}, err
	}
	_, source, err := core.TimerRequest(c.Trigger.Timer, c.Trigger.Channel)
	if err != nil {
		return core.Signal{}, err
	}
	return core.Signal{
		DMA:           dma,
		TriggerTimer:  c.Trigger.Timer,
		TriggerSource: source,
		Timers:        []string{c.PWM.Timer, c.Trigger.Timer},
	}, nil
}

// Waveform returns the sine table for the configuration
func (c *SignalConfig) Waveform() (core.Waveform, error) {
	return core.SineTable(c.Samples, c.Levels)
}

// DestinationAddr returns the bus address of the PWM compare register
func (c *SignalConfig) DestinationAddr() (uint32, error) {
	pwm, ok := stm32wb.Table.Lookup(c.PWM.Timer)
	if !ok {
		return 0, fmt.Errorf("config: pwm timer %q: %w", c.PWM.Timer, core.ErrInvalidConfig)
	}
	off, err := pwm.Block.Offset(c.DestinationField())
	if err != nil {
		return 0, err
	}
	return pwm.Base + off, nil
}
