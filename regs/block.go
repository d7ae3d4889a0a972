package regs

import (
	"errors"
	"sort"
	"strconv"
)

// WordSize is the width of every register field in bytes.
const WordSize = 4

// FieldDef is one entry of a block descriptor.
type FieldDef struct {
	Name   string
	Offset uint32 // Byte offset from the block base
	Words  uint32 // Number of words occupied (arrays), 0 means 1

	// Reserved entries occupy address space but are never exposed.
	// The generator marks RESERVED words and array fields it does not lay
	// out this way.
	Reserved bool
}

// Field declares an accessible 32-bit register at offset.
func Field(name string, offset uint32) FieldDef {
	return FieldDef{Name: name, Offset: offset, Words: 1}
}

// Reserved declares words that must not be accessed by name.
func Reserved(name string, offset, words uint32) FieldDef {
	return FieldDef{Name: name, Offset: offset, Words: words, Reserved: true}
}

func (f FieldDef) span() uint32 {
	if f.Words == 0 {
		return WordSize
	}
	return f.Words * WordSize
}

// Block is an immutable register block descriptor shared by all instances
// of one block type.
type Block struct {
	name    string
	byName  map[string]FieldDef
	ordered []FieldDef // All entries sorted by offset
	size    uint32
}

// NewBlock validates defs and builds a descriptor.
// Offsets must be word aligned, names unique and entries must not overlap.
func NewBlock(name string, defs ...FieldDef) (*Block, error) {
	if name == "" {
		return nil, errors.New("regs: block name is required")
	}

	b := &Block{
		name:    name,
		byName:  make(map[string]FieldDef, len(defs)),
		ordered: make([]FieldDef, 0, len(defs)),
	}

	for _, d := range defs {
		if d.Name == "" {
			return nil, blockError(name, "field without a name at offset "+hex32(d.Offset))
		}
		if d.Offset%WordSize != 0 {
			return nil, blockError(name, d.Name+" offset "+hex32(d.Offset)+" is not word aligned")
		}
		if _, dup := b.byName[d.Name]; dup {
			return nil, blockError(name, "duplicate field "+d.Name)
		}
		b.byName[d.Name] = d
		b.ordered = append(b.ordered, d)
	}

	sort.Slice(b.ordered, func(i, j int) bool {
		return b.ordered[i].Offset < b.ordered[j].Offset
	})

	for i := 1; i < len(b.ordered); i++ {
		prev, cur := b.ordered[i-1], b.ordered[i]
		if prev.Offset+prev.span() > cur.Offset {
			return nil, blockError(name, cur.Name+" overlaps "+prev.Name)
		}
	}
	if n := len(b.ordered); n > 0 {
		last := b.ordered[n-1]
		b.size = last.Offset + last.span()
	}

	return b, nil
}

// MustBlock is NewBlock for generated tables; it panics on an invalid layout.
func MustBlock(name string, defs ...FieldDef) *Block {
	b, err := NewBlock(name, defs...)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// Name returns the block type name
func (b *Block) Name() string {
	return b.name
}

// Size returns the number of bytes spanned by the block
func (b *Block) Size() uint32 {
	return b.size
}

// Offset resolves a field name to its byte offset.
func (b *Block) Offset(field string) (uint32, error) {
	d, ok := b.byName[field]
	if !ok {
		return 0, &FieldError{Block: b.name, Field: field, Err: ErrUnknownField}
	}
	if d.Reserved {
		return 0, &FieldError{Block: b.name, Field: field, Err: ErrReservedField}
	}
	return d.Offset, nil
}

// Has reports whether field is an accessible register of the block
func (b *Block) Has(field string) bool {
	d, ok := b.byName[field]
	return ok && !d.Reserved
}

// Fields returns the accessible fields sorted by offset.
func (b *Block) Fields() []FieldDef {
	out := make([]FieldDef, 0, len(b.ordered))
	for _, d := range b.ordered {
		if !d.Reserved {
			out = append(out, d)
		}
	}
	return out
}

func blockError(block, msg string) error {
	return &BlockError{Block: block, Msg: msg}
}

func hex32(v uint32) string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}
