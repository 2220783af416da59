package emulator

import (
	"errors"
	"fmt"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

// TrapKind identifies the reason execution of a program stopped abnormally
type TrapKind uint8

const (
	// TrapInvalidOpcode is raised when an instruction with an unknown opcode is executed
	TrapInvalidOpcode TrapKind = iota + 1
	// TrapMemoryFault is raised when a load or store touches bytes outside of the memory
	TrapMemoryFault
	// TrapDivisionByZero is raised by DIV and MOD with a zero operand
	TrapDivisionByZero
	// TrapUnsupportedCall is raised when a CALL can't be resolved to a helper function
	TrapUnsupportedCall
	// TrapInvalidRegister is raised when an instruction uses a register index above r10
	TrapInvalidRegister
	// TrapInvalidJump is raised when a jump lands before the first instruction
	TrapInvalidJump
)

var trapKindNames = map[TrapKind]string{
	TrapInvalidOpcode:   "invalid_opcode",
	TrapMemoryFault:     "memory_fault",
	TrapDivisionByZero:  "division_by_zero",
	TrapUnsupportedCall: "unsupported_call",
	TrapInvalidRegister: "invalid_register",
	TrapInvalidJump:     "invalid_jump",
}

func (k TrapKind) String() string {
	if name, ok := trapKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("trap(%d)", uint8(k))
}

var (
	ErrInvalidOpcode    = errors.New("invalid opcode")
	ErrMemoryFault      = errors.New("memory access out of bounds")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnsupportedCall  = errors.New("unsupported call")
	ErrInvalidRegister  = errors.New("invalid register")
	ErrInvalidJump      = errors.New("jump target out of range")
	errUnknownTrapClass = errors.New("unknown trap")
)

func (k TrapKind) sentinel() error {
	switch k {
	case TrapInvalidOpcode:
		return ErrInvalidOpcode
	case TrapMemoryFault:
		return ErrMemoryFault
	case TrapDivisionByZero:
		return ErrDivisionByZero
	case TrapUnsupportedCall:
		return ErrUnsupportedCall
	case TrapInvalidRegister:
		return ErrInvalidRegister
	case TrapInvalidJump:
		return ErrInvalidJump
	}

	return errUnknownTrapClass
}

// A Trap describes a runtime fault of a program. Only the fields relevant for the Kind are set, PC and Opcode are
// always filled in by the VM.
type Trap struct {
	Kind TrapKind `cbor:"kind"`
	// Index of the faulting instruction
	PC int `cbor:"pc"`
	// Opcode of the faulting instruction
	Opcode uint8 `cbor:"opcode"`

	// Address and Width of a faulting memory access
	Address int64 `cbor:"address,omitempty"`
	Width   int   `cbor:"width,omitempty"`
	// CallID of an unresolved helper call
	CallID int32 `cbor:"call_id,omitempty"`
	// Register index which is out of range
	Register uint8 `cbor:"register,omitempty"`
	// Target of a jump which is out of range
	Target int `cbor:"target,omitempty"`
}

func (t *Trap) Error() string {
	var detail string
	switch t.Kind {
	case TrapInvalidOpcode:
		detail = fmt.Sprintf(" 0x%02x", t.Opcode)
	case TrapMemoryFault:
		detail = fmt.Sprintf(", addr %d, width %d", t.Address, t.Width)
	case TrapUnsupportedCall:
		detail = fmt.Sprintf(" %d", t.CallID)
	case TrapInvalidRegister:
		detail = fmt.Sprintf(" r%d", t.Register)
	case TrapInvalidJump:
		detail = fmt.Sprintf(" %d", t.Target)
	}

	return fmt.Sprintf("pc %d: %s%s", t.PC, t.Kind.sentinel(), detail)
}

// Is makes errors.Is match a trap against the sentinel error of its kind
func (t *Trap) Is(target error) bool {
	return t.Kind.sentinel() == target
}

func invalidOpcode(op uint8) *Trap {
	return &Trap{Kind: TrapInvalidOpcode, Opcode: op}
}

func memoryFault(addr int64, size ebpf.Size) *Trap {
	return &Trap{Kind: TrapMemoryFault, Address: addr, Width: size.Bytes()}
}

func divisionByZero() *Trap {
	return &Trap{Kind: TrapDivisionByZero}
}

func unsupportedCall(id int32) *Trap {
	return &Trap{Kind: TrapUnsupportedCall, CallID: id}
}

func invalidRegister(reg ebpf.Register) *Trap {
	return &Trap{Kind: TrapInvalidRegister, Register: uint8(reg)}
}

func invalidJump(target int) *Trap {
	return &Trap{Kind: TrapInvalidJump, Target: target}
}
