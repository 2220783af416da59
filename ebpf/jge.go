package ebpf

import "fmt"

var _ Instruction = (*JumpGreaterThanEqual)(nil)

type JumpGreaterThanEqual struct {
	Dest   Register
	Offset int16
	Value  int32
}

func (a *JumpGreaterThanEqual) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JGE | BPF_K | BPF_JMP, Reg: NewReg(0, a.Dest), Off: a.Offset, Imm: a.Value},
	}, nil
}

func (a *JumpGreaterThanEqual) String() string {
	return fmt.Sprintf("if %s >= %d: goto pc%+d", a.Dest, a.Value, a.Offset)
}

var _ Instruction = (*JumpGreaterThanEqualRegister)(nil)

type JumpGreaterThanEqualRegister struct {
	Dest   Register
	Src    Register
	Offset int16
}

func (a *JumpGreaterThanEqualRegister) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JGE | BPF_X | BPF_JMP, Reg: NewReg(a.Src, a.Dest), Off: a.Offset},
	}, nil
}

func (a *JumpGreaterThanEqualRegister) String() string {
	return fmt.Sprintf("if %s >= %s: goto pc%+d", a.Dest, a.Src, a.Offset)
}
