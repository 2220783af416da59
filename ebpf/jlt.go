package ebpf

import "fmt"

var _ Instruction = (*JumpSmallerThan)(nil)

type JumpSmallerThan struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpSmallerThan) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JLT | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpSmallerThan) String() string {
	return fmt.Sprintf("if %s < %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpSmallerThanRegister)(nil)

type JumpSmallerThanRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpSmallerThanRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JLT | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpSmallerThanRegister) String() string {
	return fmt.Sprintf("if %s < %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
