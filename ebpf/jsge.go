package ebpf

import "fmt"

var _ Instruction = (*JumpSignedGreaterThanOrEqual)(nil)

type JumpSignedGreaterThanOrEqual struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpSignedGreaterThanOrEqual) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSGE | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpSignedGreaterThanOrEqual) String() string {
	return fmt.Sprintf("if %s s>= %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpSignedGreaterThanOrEqualRegister)(nil)

type JumpSignedGreaterThanOrEqualRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpSignedGreaterThanOrEqualRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSGE | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpSignedGreaterThanOrEqualRegister) String() string {
	return fmt.Sprintf("if %s s>= %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
