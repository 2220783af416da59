package ebpf

import (
	"fmt"
)

// Instruction is any struct that can be turned into a list of raw instruction.
// It returns a list since the LD IMM 64bit consists of 2 actual eBPF "instructions"
type Instruction interface {
	fmt.Stringer
	Raw() ([]RawInstruction, error)
}

// Nop does not exist in the eBPF definition, it is a filler instruction this package
// adds to decoded programs so the index numbers of the slice stay the same as
// the index numbers of the raw instructions, even when the LoadConstant64bit op is used.
// This is to avoid confusion when looking at jump commands.
type Nop struct{}

func (n *Nop) String() string {
	return "nop"
}

func (n *Nop) Raw() ([]RawInstruction, error) {
	return nil, nil
}

var _ Instruction = (*Invalid)(nil)

// Invalid holds a raw instruction which doesn't match any known encoding. Decoding never fails on unknown opcodes,
// instead the raw instruction is kept so an interpreter can report it once execution actually reaches it.
type Invalid struct {
	RawInstruction
}

func (i *Invalid) String() string {
	return fmt.Sprintf("invalid op 0x%02x", i.Op)
}

func (i *Invalid) Raw() ([]RawInstruction, error) {
	return []RawInstruction{i.RawInstruction}, nil
}

const (
	// BPFInstSize is the size of a BPF VM instruction in bytes
	BPFInstSize = 8
)

// A RawInstruction is a BPF virtual machine instruction.
type RawInstruction struct {
	// Operation to execute.
	Op uint8
	// The operation register, split into source and destination register
	// The upper 4 bits are the source register, the lower 4 bits the destination
	Reg uint8
	// Signed offset, in instructions for jumps and in bytes for memory access
	Off int16
	// Constant parameter. The meaning depends on the Op.
	Imm int32
}

func (i *RawInstruction) SetDestReg(v Register) {
	i.Reg = (i.Reg & 0xF0) | (uint8(v) & 0x0F)
}

func (i *RawInstruction) GetDestReg() Register {
	return Register(i.Reg & 0x0F)
}

func (i *RawInstruction) SetSourceReg(v Register) {
	i.Reg = (i.Reg & 0x0F) | (uint8(v) << 4 & 0xF0)
}

func (i *RawInstruction) GetSourceReg() Register {
	return Register((i.Reg & 0xF0) >> 4)
}

func NewReg(src Register, dest Register) uint8 {
	return (uint8(src) << 4 & 0xF0) | (uint8(dest) & 0x0F)
}

// MustEncode does the same as Encode but rather than returning an error it will panic
func MustEncode(raw []Instruction) []RawInstruction {
	inst, err := Encode(raw)
	if err != nil {
		panic(err)
	}

	return inst
}

// Encode turns a slice of instructions into raw instructions
func Encode(ins []Instruction) ([]RawInstruction, error) {
	// The output will be at least as big as the input, minus nops
	instructions := make([]RawInstruction, 0, len(ins))
	for _, instruction := range ins {
		rawInstructions, err := instruction.Raw()
		if err != nil {
			return nil, err
		}

		instructions = append(instructions, rawInstructions...)
	}

	return instructions, nil
}

type Size uint8

const (
	// BPF_W Word - 4 bytes
	BPF_W Size = 0x00
	// BPF_H Half-Word - 2 bytes
	BPF_H Size = 0x08
	// BPF_B Byte - 1 byte
	BPF_B Size = 0x10
	// BPF_DW Double-Word - 8 bytes
	BPF_DW Size = 0x18
)

func (s Size) String() string {
	switch s {
	case BPF_W:
		return "u32"
	case BPF_H:
		return "u16"
	case BPF_B:
		return "u8"
	case BPF_DW:
		return "u64"
	}

	return "invalid"
}

// Bytes returns the width of the size in bytes, or 0 for an invalid size
func (s Size) Bytes() int {
	switch s {
	case BPF_W:
		return 4
	case BPF_H:
		return 2
	case BPF_B:
		return 1
	case BPF_DW:
		return 8
	}

	return 0
}

// Register is a value used to indicate a source or destination register.
// See section 'BPF kernel internals' of https://www.kernel.org/doc/Documentation/networking/filter.rst
type Register uint8

const (
	// BPF_REG_0 aka R0 is the return value of the eBPF program and the accumulator of most examples. Helper
	// functions return their result in it as well.
	BPF_REG_0 Register = iota
	// BPF_REG_1 aka R1 is the first argument of a helper function.
	BPF_REG_1
	// BPF_REG_2 aka R2 is the second argument of a helper function.
	BPF_REG_2
	// BPF_REG_3 aka R3 is the third argument of a helper function.
	BPF_REG_3
	// BPF_REG_4 aka R4 is the forth argument of a helper function.
	BPF_REG_4
	// BPF_REG_5 aka R5 is the fifth argument of a helper function.
	BPF_REG_5
	// BPF_REG_6 aka R6 is a general purpose register, by convention callee saved.
	BPF_REG_6
	// BPF_REG_7 aka R7 is a general purpose register, by convention callee saved.
	BPF_REG_7
	// BPF_REG_8 aka R8 is a general purpose register, by convention callee saved.
	BPF_REG_8
	// BPF_REG_9 aka R9 is a general purpose register, by convention callee saved.
	BPF_REG_9
	// BPF_REG_10 aka R10 is by convention the read-only frame pointer. The interpreter doesn't enforce this.
	BPF_REG_10
	// BPF_REG_MAX is an invalid register, it is used for enumeration over registers.
	BPF_REG_MAX
)

// NumRegisters is the size of the register file
const NumRegisters = int(BPF_REG_MAX)

func (r Register) String() string {
	if r < BPF_REG_MAX {
		return fmt.Sprintf("r%d", r)
	}

	return fmt.Sprintf("r%d(invalid)", uint8(r))
}

// Valid returns true if the register is part of the register file
func (r Register) Valid() bool {
	return r < BPF_REG_MAX
}

const (
	// BPF_IMM Load intermediate values into registers
	BPF_IMM uint8 = 0x00
	// BPF_ABS Load values at intermediate offsets from the packet buffer
	BPF_ABS uint8 = 0x20
	// BPF_IND Load values at variable offsets from the packet buffer
	BPF_IND uint8 = 0x40
	// BPF_MEM Load values from memory into registers visa versa.
	BPF_MEM uint8 = 0x60
)

const (
	// BPF_LD is used for specialized load operations
	BPF_LD uint8 = iota
	// BPF_LDX is used for generic load operations
	BPF_LDX
	// BPF_ST is used for specialized store operations
	BPF_ST
	// BPF_STX is used for generic store operations
	BPF_STX
	// BPF_ALU is used for 32bit arithmatic operations, only the byteswap ops of this class are supported
	BPF_ALU
	// BPF_JMP is used for 64bit branching operations
	BPF_JMP
	// BPF_JMP32 is used for 32bit branching operations, not supported
	BPF_JMP32
	// BPF_ALU64 is used for 64bit arithmatic operations
	BPF_ALU64
)

const (
	// BPF_K indicates that the source argument of an operation is an immediate value
	BPF_K uint8 = 0x00
	// BPF_X indicates that the source argument of an operation is a register
	BPF_X uint8 = 0x08
)

const (
	// BPF_ADD add two numbers
	BPF_ADD uint8 = 0x00
	// BPF_SUB subtract two numbers
	BPF_SUB uint8 = 0x10
	// BPF_MUL multiply two numbers
	BPF_MUL uint8 = 0x20
	// BPF_DIV divide two numbers
	BPF_DIV uint8 = 0x30
	// BPF_OR binary or two numbers
	BPF_OR uint8 = 0x40
	// BPF_AND binary and two numbers
	BPF_AND uint8 = 0x50
	// BPF_LSH left shift a number
	BPF_LSH uint8 = 0x60
	// BPF_RSH right shift a number
	BPF_RSH uint8 = 0x70
	// BPF_NEG negate/invert a number
	BPF_NEG uint8 = 0x80
	// BPF_MOD get the modulo of two numbers
	BPF_MOD uint8 = 0x90
	// BPF_XOR binary XOR two numbers
	BPF_XOR uint8 = 0xa0
	// BPF_MOV move register into another register
	BPF_MOV uint8 = 0xb0
	// BPF_ARSH Signed shift right
	BPF_ARSH uint8 = 0xc0
	// BPF_END endianness conversion
	BPF_END uint8 = 0xd0
)

const (
	// BPF_JA jump always
	BPF_JA uint8 = 0x00
	// BPF_JEQ jump equal
	BPF_JEQ uint8 = 0x10
	// BPF_JGT jump greater than
	BPF_JGT uint8 = 0x20
	// BPF_JGE jump greater than or equal
	BPF_JGE uint8 = 0x30
	// BPF_JSET jump if A & B != 0
	BPF_JSET uint8 = 0x40
	// BPF_JNE jump not equal
	BPF_JNE uint8 = 0x50
	// BPF_JSGT jump signed greater than
	BPF_JSGT uint8 = 0x60
	// BPF_JSGE jump signed greater than or equal
	BPF_JSGE uint8 = 0x70
	// BPF_CALL call a helper function
	BPF_CALL uint8 = 0x80
	// BPF_EXIT exit the program
	BPF_EXIT uint8 = 0x90
	// BPF_JLT jump less than
	BPF_JLT uint8 = 0xa0
	// BPF_JLE jump less than equal
	BPF_JLE uint8 = 0xb0
	// BPF_JSLT jump signed less than
	BPF_JSLT uint8 = 0xc0
	// BPF_JSLE jump signed less then equal
	BPF_JSLE uint8 = 0xd0
)

const (
	// BPF_TO_LE convert to little-endian
	BPF_TO_LE uint8 = 0x00
	// BPF_TO_BE convert to big-endian
	BPF_TO_BE uint8 = 0x08
)
