package ebpf

import "fmt"

var _ Instruction = (*JumpEqual)(nil)

type JumpEqual struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpEqual) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JEQ | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpEqual) String() string {
	return fmt.Sprintf("if %s == %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpEqualRegister)(nil)

type JumpEqualRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpEqualRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JEQ | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpEqualRegister) String() string {
	return fmt.Sprintf("if %s == %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
