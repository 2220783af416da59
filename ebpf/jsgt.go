package ebpf

import "fmt"

var _ Instruction = (*JumpSignedGreaterThan)(nil)

type JumpSignedGreaterThan struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpSignedGreaterThan) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSGT | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpSignedGreaterThan) String() string {
	return fmt.Sprintf("if %s s> %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpSignedGreaterThanRegister)(nil)

type JumpSignedGreaterThanRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpSignedGreaterThanRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JSGT | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpSignedGreaterThanRegister) String() string {
	return fmt.Sprintf("if %s s> %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
