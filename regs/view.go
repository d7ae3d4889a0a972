package regs

// View is one peripheral instance: a block descriptor placed at a base
// address. It owns no memory.
type View struct {
	bus   Bus
	block *Block
	base  uint32
}

// NewView places block at base on bus
func NewView(bus Bus, block *Block, base uint32) View {
	return View{bus: bus, block: block, base: base}
}

// Base returns the base address of the instance
func (v View) Base() uint32 {
	return v.base
}

// Block returns the block descriptor
func (v View) Block() *Block {
	return v.block
}

// Bus returns the bus the view accesses
func (v View) Bus() Bus {
	return v.bus
}

// Valid reports whether the view has been bound to a block and bus
func (v View) Valid() bool {
	return v.bus != nil && v.block != nil
}

// Addr returns the absolute address of field.
func (v View) Addr(field string) (uint32, error) {
	off, err := v.block.Offset(field)
	if err != nil {
		return 0, err
	}
	return v.base + off, nil
}

// Reg resolves field to a register handle. Drivers call this once during
// setup so that an unknown name fails before any hardware is touched.
func (v View) Reg(field string) (Reg, error) {
	addr, err := v.Addr(field)
	if err != nil {
		return Reg{}, err
	}
	return Reg{bus: v.bus, addr: addr}, nil
}

// MustReg is Reg for fields known to exist; it panics otherwise.
func (v View) MustReg(field string) Reg {
	r, err := v.Reg(field)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Read returns the current value of field
func (v View) Read(field string) (uint32, error) {
	r, err := v.Reg(field)
	if err != nil {
		return 0, err
	}
	return r.Get(), nil
}

// Write stores value into field
func (v View) Write(field string, value uint32) error {
	r, err := v.Reg(field)
	if err != nil {
		return err
	}
	r.Set(value)
	return nil
}

// Modify clears the mask bits of field then ORs in value
func (v View) Modify(field string, mask, value uint32) error {
	r, err := v.Reg(field)
	if err != nil {
		return err
	}
	r.Modify(mask, value)
	return nil
}

// Snapshot is the value of one field at the time of an Inspect call.
type Snapshot struct {
	Block  string
	Field  string
	Offset uint32
	Addr   uint32
	Value  uint32
}

// Inspect reads every accessible field in offset order.
func (v View) Inspect() []Snapshot {
	fields := v.block.Fields()
	out := make([]Snapshot, 0, len(fields))
	for _, f := range fields {
		addr := v.base + f.Offset
		out = append(out, Snapshot{
			Block:  v.block.Name(),
			Field:  f.Name,
			Offset: f.Offset,
			Addr:   addr,
			Value:  v.bus.Load32(addr),
		})
	}
	return out
}

func (v View) String() string {
	name := "nil"
	if v.block != nil {
		name = v.block.Name()
	}
	return "<" + name + " " + hex32(v.base) + ">"
}

// Reg is a resolved 32-bit register. The zero Reg is unbound.
type Reg struct {
	bus  Bus
	addr uint32
}

// Valid reports whether the register was resolved
func (r Reg) Valid() bool {
	return r.bus != nil
}

// Addr returns the absolute register address
func (r Reg) Addr() uint32 {
	return r.addr
}

// Get reads the register
func (r Reg) Get() uint32 {
	return r.bus.Load32(r.addr)
}

// Set writes the register
func (r Reg) Set(value uint32) {
	r.bus.Store32(r.addr, value)
}

// Modify performs a read-modify-write: clear mask, then OR in value.
func (r Reg) Modify(mask, value uint32) {
	r.bus.Store32(r.addr, (r.bus.Load32(r.addr)&^mask)|value)
}

// SetBits ORs bits into the register
func (r Reg) SetBits(bits uint32) {
	r.Modify(0, bits)
}

// ClearBits clears bits in the register
func (r Reg) ClearBits(bits uint32) {
	r.Modify(bits, 0)
}

// HasBits reports whether all bits are set
func (r Reg) HasBits(bits uint32) bool {
	return r.Get()&bits == bits
}
