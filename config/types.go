package config

// PWMConfig is the timer channel whose compare register receives the
// waveform. Board code configures the pin and timer; the DMA only writes
// the compare register.
type PWMConfig struct {
	Timer     string // Timer instance, e.g. "TIM1"
	Channel   int    // Capture/compare channel 1-4
	Pin       string // Pin with the timer channel as alternate function
	Frequency uint32 // PWM carrier frequency (Hz)
}

// TriggerConfig is the timer that paces the DMA, one request per sample
type TriggerConfig struct {
	Timer   string // Timer instance, e.g. "TIM16"
	Channel int    // Capture/compare channel raising the request, 0 for update
}

// DMAChannelConfig selects the DMA channel streaming the table
type DMAChannelConfig struct {
	Controller int    // 1 or 2
	Channel    int    // 1-7
	Priority   string // low, medium, high, very_high
}

// SignalConfig represents the complete signal generator configuration
type SignalConfig struct {
	Frequency uint32 // Output waveform frequency (Hz)
	Samples   int    // Table entries per period
	Levels    int    // Amplitude levels (PWM counts per carrier period)

	PWM     PWMConfig
	Trigger TriggerConfig
	DMA     DMAChannelConfig

	Debug bool // Enable debug output on the console
}
