//go:build tinygo

package main

import (
	"time"

	"siggen/board"
	"siggen/config"
	"siggen/core"
	"siggen/protocol"
	"siggen/regs"
	"siggen/stm32wb"
)

// reportInterval is how often the setup report is replayed so a host can
// attach at any time
const reportInterval = 2 * time.Second

var (
	// The DMA reads the table for as long as the board runs
	wave core.Waveform

	reporter *core.Reporter
)

func main() {
	cfg := config.DefaultConfig()
	initConsole(cfg.Debug)

	out := protocol.NewScratchOutput()
	transport := protocol.NewTransport(out)
	transport.SetFlushCallback(func() {
		consoleWrite(out.Result())
		out.Reset()
	})
	reporter = core.NewReporter(transport)

	views, err := start(cfg)
	if err != nil {
		core.DumpTrace()
		reporter.Status(err)
		panic("siggen: " + err.Error())
	}

	// The stream runs without the CPU from here on
	for {
		sendReport(cfg, views)
		time.Sleep(reportInterval)
	}
}

// start runs the full setup sequence on the hardware bus and returns the
// register blocks worth reporting
func start(cfg *config.SignalConfig) ([]regs.View, error) {
	p, err := core.NewPeripherals(regs.MMIO{}, stm32wb.Table)
	if err != nil {
		return nil, err
	}

	sig, err := cfg.Signal()
	if err != nil {
		return nil, err
	}
	wave, err = cfg.Waveform()
	if err != nil {
		return nil, err
	}
	gen, err := core.NewSignalGenerator(p, sig)
	if err != nil {
		return nil, err
	}

	output, err := board.Setup(p, cfg)
	if err != nil {
		return nil, err
	}
	if err := gen.Start(wave, output.Dest); err != nil {
		return nil, err
	}
	if cfg.Debug {
		core.DumpTrace()
	}

	trigger, err := p.View(cfg.Trigger.Timer)
	if err != nil {
		return nil, err
	}
	h := gen.Handle()
	return []regs.View{h.Channel(), h.Mux(), trigger, output.Timer}, nil
}

func sendReport(cfg *config.SignalConfig, views []regs.View) {
	if err := reporter.Registers(views...); err != nil {
		core.DebugPrintln("[REPORT] registers: " + err.Error())
	}
	if err := reporter.Waveform(wave, cfg.SampleRate(), cfg.Levels); err != nil {
		core.DebugPrintln("[REPORT] waveform: " + err.Error())
	}
	reporter.Status(nil)
}
