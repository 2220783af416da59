package ebpf

import "fmt"

var _ Instruction = (*JumpSmallerThanEqual)(nil)

type JumpSmallerThanEqual struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpSmallerThanEqual) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JLE | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpSmallerThanEqual) String() string {
	return fmt.Sprintf("if %s <= %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpSmallerThanEqualRegister)(nil)

type JumpSmallerThanEqualRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpSmallerThanEqualRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JLE | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpSmallerThanEqualRegister) String() string {
	return fmt.Sprintf("if %s <= %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
