package ebpf

import "fmt"

var _ Instruction = (*JumpSignedSmallerThanOrEqual)(nil)

type JumpSignedSmallerThanOrEqual struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpSignedSmallerThanOrEqual) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSLE | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpSignedSmallerThanOrEqual) String() string {
	return fmt.Sprintf("if %s s<= %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpSignedSmallerThanOrEqualRegister)(nil)

type JumpSignedSmallerThanOrEqualRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpSignedSmallerThanOrEqualRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSLE | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpSignedSmallerThanOrEqualRegister) String() string {
	return fmt.Sprintf("if %s s<= %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
