package core

import "siggen/regs"

// Peripherals binds a generated register table to a bus. Creating one is
// the first thing firmware does: it refuses a missing table and checks the
// silicon before any driver gets a chance to write a register.
type Peripherals struct {
	bus   regs.Bus
	table *regs.Table
}

// NewPeripherals validates table against the running device.
func NewPeripherals(bus regs.Bus, table *regs.Table) (*Peripherals, error) {
	if table.Empty() {
		return nil, &MissingTableError{}
	}
	if err := CheckDevice(bus, table); err != nil {
		return nil, err
	}
	return &Peripherals{bus: bus, table: table}, nil
}

// Bus returns the bus all views are bound to
func (p *Peripherals) Bus() regs.Bus {
	return p.bus
}

// Table returns the register table
func (p *Peripherals) Table() *regs.Table {
	return p.table
}

// View returns the named peripheral instance, e.g. "TIM16" or
// "DMA1_Channel1".
func (p *Peripherals) View(name string) (regs.View, error) {
	return p.table.View(p.bus, name)
}

// CheckDevice reads the device identification register named by table and
// compares its masked value with the id the table was generated for. It
// never writes to the bus.
func CheckDevice(bus regs.Bus, table *regs.Table) error {
	if table.Empty() {
		return &MissingTableError{}
	}
	view, err := table.View(bus, table.IDPeripheral)
	if err != nil {
		return err
	}
	reg, err := view.Reg(table.IDField)
	if err != nil {
		return err
	}

	id := reg.Get() & table.IDMask
	RecordEvent(EvtDeviceCheck, 0, reg.Addr(), id)
	if id != table.DeviceID {
		return &DeviceMismatchError{
			Device:   table.Device,
			Expected: table.DeviceID,
			Actual:   id,
		}
	}
	DebugPrintln("[DEVICE] " + table.Device + " id=" + hexa(id))
	return nil
}
