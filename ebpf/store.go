package ebpf

import "fmt"

var _ Instruction = (*StoreMemoryConstant)(nil)

// StoreMemoryConstant writes the low Size bytes of the sign-extended Value to linear memory at Dest + Offset
type StoreMemoryConstant struct {
	Dest   Register
	Size   Size
	Offset int16
	Value  int32
}

func (sm *StoreMemoryConstant) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{
			Op:  BPF_ST | uint8(sm.Size) | BPF_MEM,
			Reg: NewReg(0, sm.Dest),
			Off: sm.Offset,
			Imm: sm.Value,
		},
	}, nil
}

func (sm *StoreMemoryConstant) String() string {
	return fmt.Sprintf("*(%s *)(%s %s) = %d", sm.Size, sm.Dest, offsetString(sm.Offset), sm.Value)
}

var _ Instruction = (*StoreMemoryRegister)(nil)

// StoreMemoryRegister writes the low Size bytes of Src to linear memory at Dest + Offset
type StoreMemoryRegister struct {
	Src    Register
	Dest   Register
	Offset int16
	Size   Size
}

func (sm *StoreMemoryRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{
			Op:  BPF_STX | uint8(sm.Size) | BPF_MEM,
			Reg: NewReg(sm.Src, sm.Dest),
			Off: sm.Offset,
		},
	}, nil
}

func (sm *StoreMemoryRegister) String() string {
	return fmt.Sprintf("*(%s *)(%s %s) = %s", sm.Size, sm.Dest, offsetString(sm.Offset), sm.Src)
}

func offsetString(off int16) string {
	if off < 0 {
		return fmt.Sprintf("- %d", -int32(off))
	}

	return fmt.Sprintf("+ %d", off)
}
