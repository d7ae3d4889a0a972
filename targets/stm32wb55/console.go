//go:build tinygo

package main

import (
	"machine"

	"siggen/core"
)

// The ST-LINK virtual COM port is wired to USART1 on the Nucleo-WB55
var console = machine.Serial

func initConsole(debug bool) {
	console.Configure(machine.UARTConfig{BaudRate: 115200})

	// Debug text shares the UART with report frames; the host parser
	// skips it while resynchronising
	core.SetDebugWriter(func(s string) {
		console.Write([]byte(s))
		console.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(debug)
}

func consoleWrite(b []byte) {
	console.Write(b)
}
