package ebpf

import "fmt"

var _ Instruction = (*JumpGreaterThan)(nil)

type JumpGreaterThan struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpGreaterThan) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JGT | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpGreaterThan) String() string {
	return fmt.Sprintf("if %s > %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpGreaterThanRegister)(nil)

type JumpGreaterThanRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpGreaterThanRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JGT | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpGreaterThanRegister) String() string {
	return fmt.Sprintf("if %s > %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
