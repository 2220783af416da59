package ebpf

import "fmt"

var _ Instruction = (*LoadConstant64bit)(nil)

// LoadConstant64bit loads a 64-bit immediate into Dest. It is the only instruction which is encoded in two raw
// instructions, the lower 32 bits are stored in the imm of the first and the upper 32 bits in the imm of the second.
type LoadConstant64bit struct {
	Dest Register
	Src  Register
	Val1 int32
	Val2 int32
}

func (lc *LoadConstant64bit) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_LD | uint8(BPF_DW) | BPF_IMM, Reg: NewReg(lc.Src, lc.Dest), Imm: lc.Val1},
		{Op: 0, Reg: 0, Imm: lc.Val2},
	}, nil
}

// Value returns the full 64-bit constant
func (lc *LoadConstant64bit) Value() int64 {
	return int64(uint64(uint32(lc.Val1)) | uint64(uint32(lc.Val2))<<32)
}

func (lc *LoadConstant64bit) String() string {
	return fmt.Sprintf("%s = %d ll", lc.Dest, lc.Value())
}

var _ Instruction = (*LoadMemory)(nil)

type LoadMemory struct {
	Src    Register
	Dest   Register
	Offset int16
	Size   Size
}

func (lm *LoadMemory) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{
			Op:  BPF_LDX | uint8(lm.Size) | BPF_MEM,
			Reg: NewReg(lm.Src, lm.Dest),
			Off: lm.Offset,
		},
	}, nil
}

func (lm *LoadMemory) String() string {
	sign := "+"
	offset := int32(lm.Offset)
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	return fmt.Sprintf("%s = *(%s *) (%s %s %d)", lm.Dest, lm.Size, lm.Src, sign, offset)
}

var _ Instruction = (*LoadSocketBuf)(nil)

// LoadSocketBuf loads Size bytes at Src + Offset of the packet buffer into r0.
type LoadSocketBuf struct {
	Src    Register
	Size   Size
	Offset int32
}

func (lm *LoadSocketBuf) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{
			Op:  BPF_LD | BPF_IND | uint8(lm.Size),
			Reg: NewReg(lm.Src, 0),
			Imm: lm.Offset,
		},
	}, nil
}

func (lm *LoadSocketBuf) String() string {
	return fmt.Sprintf("r0 = *(%s *) pkt[%s%+d]", lm.Size, lm.Src, lm.Offset)
}

var _ Instruction = (*LoadSocketBufConstant)(nil)

// LoadSocketBufConstant loads Size bytes at the absolute offset Value of the packet buffer into r0.
type LoadSocketBufConstant struct {
	Value int32
	Size  Size
}

func (lm *LoadSocketBufConstant) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{
			Op:  BPF_LD | BPF_ABS | uint8(lm.Size),
			Imm: lm.Value,
		},
	}, nil
}

func (lm *LoadSocketBufConstant) String() string {
	return fmt.Sprintf("r0 = *(%s *) pkt[%d]", lm.Size, lm.Value)
}
