package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"siggen/config"
	"siggen/core"
	"siggen/host/monitor"
	"siggen/host/serial"
	"siggen/host/wavpreview"
	"siggen/protocol"
	"siggen/regs"
	"siggen/stm32wb"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:])
	case "wav":
		err = runWav(os.Args[2:])
	case "monitor":
		err = runMonitor(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("siggen-host - STM32WB55 DMA waveform streamer tools (report stream %s)\n", protocol.Version)
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  plan     - Run the setup sequence against a simulated bus and list every register write")
	fmt.Println("  wav      - Render the configured waveform as a WAV file")
	fmt.Println("  monitor  - Capture the setup report a board prints on its UART")
	fmt.Println()
	fmt.Println("Run 'siggen-host <command> -h' for command flags.")
}

func loadConfig(path string) (*config.SignalConfig, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return config.LoadConfig(data)
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	configPath := fs.String("config", "", "Signal configuration (JSON); defaults to the reference board")
	debug := fs.Bool("debug", false, "Print debug output and the setup trace")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	if *debug {
		core.SetDebugWriter(func(s string) { fmt.Println(s) })
		core.SetDebugEnabled(true)
	}

	bus := regs.NewSimBus()
	bus.Poke(stm32wb.DBGMCU_BASE, stm32wb.DeviceID)

	p, err := core.NewPeripherals(bus, stm32wb.Table)
	if err != nil {
		return err
	}
	sig, err := cfg.Signal()
	if err != nil {
		return err
	}
	wave, err := cfg.Waveform()
	if err != nil {
		return err
	}
	dst, err := cfg.DestinationAddr()
	if err != nil {
		return err
	}

	gen, err := core.NewSignalGenerator(p, sig)
	if err != nil {
		return err
	}
	bus.ClearLog()
	if err := gen.Start(wave, core.Address(dst)); err != nil {
		return err
	}

	fmt.Printf("%s: %d Hz sine, %d samples, %d levels, %d Hz sample rate\n",
		stm32wb.Device, cfg.Frequency, cfg.Samples, cfg.Levels, cfg.SampleRate())
	fmt.Printf("Stream table -> %s.%s via %s (request 0x%02x)\n\n",
		cfg.PWM.Timer, cfg.DestinationField(), gen.Handle().Name(), uint32(gen.Handle().Request()))

	for i, w := range bus.Writes() {
		fmt.Printf("%3d  %-36s 0x%08x <- 0x%08x\n", i, monitor.RegisterName(stm32wb.Table, w.Addr), w.Addr, w.Value)
	}

	if *debug {
		fmt.Println()
		core.DumpTrace()
	}
	return nil
}

func runWav(args []string) error {
	fs := flag.NewFlagSet("wav", flag.ExitOnError)
	configPath := fs.String("config", "", "Signal configuration (JSON); defaults to the reference board")
	output := fs.String("o", "siggen.wav", "Output WAV file")
	rate := fs.Int("rate", 0, "WAV sample rate (default: the DMA request rate)")
	periods := fs.Int("periods", 100, "Number of waveform periods")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	wave, err := cfg.Waveform()
	if err != nil {
		return err
	}
	if *rate == 0 {
		*rate = int(cfg.SampleRate())
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := wavpreview.Render(f, wave, wavpreview.Options{SampleRate: *rate, Periods: *periods, Levels: cfg.Levels}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	lo, hi := wave.Peak()
	fmt.Printf("Wrote %s: %d periods of %d samples at %d Hz (levels %d..%d)\n", *output, *periods, len(wave), *rate, lo, hi)
	return nil
}

func runMonitor(args []string) error {
	fs := flag.NewFlagSet("monitor", flag.ExitOnError)
	device := fs.String("device", "/dev/ttyACM0", "Serial device path")
	baud := fs.Int("baud", serial.DefaultBaud, "Baud rate")
	timeout := fs.Duration("timeout", 5*time.Second, "Wait for each report frame")
	output := fs.String("wav", "", "Also render the reported waveform to this WAV file")
	fs.Parse(args)

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Listening on %s at %d baud (reset the board to replay its setup)...\n", *device, *baud)
	idle := int(*timeout / (time.Duration(cfg.ReadTimeout) * time.Millisecond))
	m, err := monitor.Open(cfg, stm32wb.Table, idle)
	if err != nil {
		return err
	}
	defer m.Close()

	c, captureErr := m.Capture(*timeout)
	if c != nil {
		monitor.Print(os.Stdout, c)
	}

	if *output != "" && c != nil && c.Waveform != nil {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		err = wavpreview.Render(f, c.Waveform.Samples, wavpreview.Options{
			SampleRate: int(c.Waveform.SampleRate),
			Periods:    100,
			Levels:     int(c.Waveform.Levels),
		})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *output)
	}
	return captureErr
}
