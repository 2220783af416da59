package ebpf

import "fmt"

var _ Instruction = (*JumpSignedSmallerThan)(nil)

type JumpSignedSmallerThan struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpSignedSmallerThan) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSLT | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpSignedSmallerThan) String() string {
	return fmt.Sprintf("if %s s< %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpSignedSmallerThanRegister)(nil)

type JumpSignedSmallerThanRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpSignedSmallerThanRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSLT | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpSignedSmallerThanRegister) String() string {
	return fmt.Sprintf("if %s s< %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
