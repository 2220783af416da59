package ebpf

import "fmt"

// Both byteswap instructions share one opcode per direction, the width of the conversion is encoded in the imm
// field. Only the widths 16, 32 and 64 exist, ValidEndWidth reports if a width is one of them.

// ValidEndWidth returns true if width is a bit width supported by the byteswap instructions
func ValidEndWidth(width int32) bool {
	return width == 16 || width == 32 || width == 64
}

var _ Instruction = (*EndToLE)(nil)

// EndToLE converts the low Width bits of Dest to little-endian and zeroes the rest
type EndToLE struct {
	Dest  Register
	Width uint8
}

func (a *EndToLE) Raw() ([]RawInstruction, error) {
	if !ValidEndWidth(int32(a.Width)) {
		return nil, fmt.Errorf("invalid byteswap width %d", a.Width)
	}

	return []RawInstruction{
		{Op: BPF_ALU | BPF_END | BPF_TO_LE, Reg: NewReg(0, a.Dest), Imm: int32(a.Width)},
	}, nil
}

func (a *EndToLE) String() string {
	return fmt.Sprintf("%s = le%d %s", a.Dest, a.Width, a.Dest)
}

var _ Instruction = (*EndToBE)(nil)

// EndToBE converts the low Width bits of Dest to big-endian and zeroes the rest
type EndToBE struct {
	Dest  Register
	Width uint8
}

func (a *EndToBE) Raw() ([]RawInstruction, error) {
	if !ValidEndWidth(int32(a.Width)) {
		return nil, fmt.Errorf("invalid byteswap width %d", a.Width)
	}

	return []RawInstruction{
		{Op: BPF_ALU | BPF_END | BPF_TO_BE, Reg: NewReg(0, a.Dest), Imm: int32(a.Width)},
	}, nil
}

func (a *EndToBE) String() string {
	return fmt.Sprintf("%s = be%d %s", a.Dest, a.Width, a.Dest)
}
