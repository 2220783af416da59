package ebpf

import "fmt"

var _ Instruction = (*JumpNotEqual)(nil)

type JumpNotEqual struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpNotEqual) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JNE | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpNotEqual) String() string {
	return fmt.Sprintf("if %s != %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpNotEqualRegister)(nil)

type JumpNotEqualRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpNotEqualRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JNE | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpNotEqualRegister) String() string {
	return fmt.Sprintf("if %s != %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
