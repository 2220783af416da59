package ebpf

import "fmt"

var _ Instruction = (*JumpIfAnd)(nil)

type JumpIfAnd struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpIfAnd) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSET | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpIfAnd) String() string {
	return fmt.Sprintf("if %s & %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpIfAndRegister)(nil)

type JumpIfAndRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpIfAndRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSET | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpIfAndRegister) String() string {
	return fmt.Sprintf("if %s & %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
