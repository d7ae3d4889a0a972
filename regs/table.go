package regs

// Peripheral is one instance listed in a generated register table.
type Peripheral struct {
	Name  string
	Block *Block
	Base  uint32
}

// Table is the output of the offline header generator: block layouts,
// instance base addresses and the identity of the silicon it was built for.
type Table struct {
	Device   string // e.g. "stm32wb55"
	DeviceID uint32 // Expected value of the device id field after masking
	Source   string // Generator invocation, used in error messages

	// Location of the device identification register
	IDPeripheral string
	IDField      string
	IDMask       uint32

	Peripherals map[string]Peripheral
}

// Empty reports whether the table carries no peripheral data
func (t *Table) Empty() bool {
	return t == nil || len(t.Peripherals) == 0
}

// Lookup finds a peripheral instance by name
func (t *Table) Lookup(name string) (Peripheral, bool) {
	if t == nil {
		return Peripheral{}, false
	}
	p, ok := t.Peripherals[name]
	return p, ok
}

// View binds the named instance to bus.
func (t *Table) View(bus Bus, name string) (View, error) {
	p, ok := t.Lookup(name)
	if !ok {
		return View{}, &FieldError{Block: t.device(), Field: name, Err: ErrUnknownPeripheral}
	}
	return NewView(bus, p.Block, p.Base), nil
}

func (t *Table) device() string {
	if t == nil {
		return "<nil>"
	}
	return t.Device
}
