//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts while a DMA channel is being
// reprogrammed and returns the previous state
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
