package regs

import "errors"

// Register table errors. All of them indicate a programming or table
// generation mistake and are reported while drivers resolve their registers.
var (
	ErrUnknownField      = errors.New("regs: unknown register field")
	ErrReservedField     = errors.New("regs: reserved register field")
	ErrUnknownPeripheral = errors.New("regs: unknown peripheral")
	ErrBadBlock          = errors.New("regs: invalid block descriptor")
)

// FieldError reports a field lookup that failed against a block descriptor.
type FieldError struct {
	Block string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error() + ": " + e.Block + "." + e.Field
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// BlockError reports an invalid block descriptor layout.
type BlockError struct {
	Block string
	Msg   string
}

func (e *BlockError) Error() string {
	return ErrBadBlock.Error() + ": " + e.Block + ": " + e.Msg
}

func (e *BlockError) Unwrap() error {
	return ErrBadBlock
}
