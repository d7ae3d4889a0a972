package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TraceEvent is one step of the peripheral bring-up, kept for post-mortem
// dumps when setup fails on the bench.
type TraceEvent struct {
	EventType uint8  // Event type code
	Unit      uint8  // Controller or timer number
	Addr      uint32 // Register touched
	Value     uint32 // Value written or read
}

// Event type codes
const (
	EvtDeviceCheck   = 1 // Device id read
	EvtClockEnable   = 2 // Clock gate bit set
	EvtDMAConfigure  = 3 // Channel CCR programmed
	EvtDMAMux        = 4 // Request line routed
	EvtDMAStart      = 5 // Channel enabled
	EvtTriggerEnable = 6 // Timer DMA request enabled
)

const (
	TraceRingSize = 16
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	traceRing     [TraceRingSize]TraceEvent
	traceRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures a bring-up step in the trace ring
func RecordEvent(eventType, unit uint8, addr, value uint32) {
	idx := traceRingHead
	traceRing[idx] = TraceEvent{
		EventType: eventType,
		Unit:      unit,
		Addr:      addr,
		Value:     value,
	}
	traceRingHead = (idx + 1) % TraceRingSize
}

// TraceEvents returns the recorded events, oldest first
func TraceEvents() []TraceEvent {
	out := make([]TraceEvent, 0, TraceRingSize)
	start := traceRingHead
	for i := uint8(0); i < TraceRingSize; i++ {
		evt := traceRing[(start+i)%TraceRingSize]
		if evt.EventType == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// DumpTrace outputs the trace ring (call after a failed bring-up)
func DumpTrace() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TRACE] === Setup Trace ===")
	for _, evt := range TraceEvents() {
		var name string
		switch evt.EventType {
		case EvtDeviceCheck:
			name = "DEVICE_ID"
		case EvtClockEnable:
			name = "CLOCK_EN"
		case EvtDMAConfigure:
			name = "DMA_CCR"
		case EvtDMAMux:
			name = "DMAMUX"
		case EvtDMAStart:
			name = "DMA_START"
		case EvtTriggerEnable:
			name = "TIM_DIER"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TRACE] " + name +
			" unit=" + itoa(int(evt.Unit)) +
			" addr=" + hexa(evt.Addr) +
			" value=" + hexa(evt.Value))
	}
	debugPrintln("[TRACE] === End Trace ===")
}

// ClearTrace clears the trace ring
func ClearTrace() {
	for i := range traceRing {
		traceRing[i] = TraceEvent{}
	}
	traceRingHead = 0
}
