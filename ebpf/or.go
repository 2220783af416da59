package ebpf

import "fmt"

var _ Instruction = (*Or64)(nil)

type Or64 struct {
	Dest  Register
	Value int32
}

func (a *Or64) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_ALU64 | BPF_K | BPF_OR, Reg: NewReg(0, a.Dest), Imm: a.Value},
	}, nil
}

func (a *Or64) String() string {
	return fmt.Sprintf("%s |= %d", a.Dest, a.Value)
}

var _ Instruction = (*Or64Register)(nil)

type Or64Register struct {
	Dest Register
	Src  Register
}

func (a *Or64Register) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_ALU64 | BPF_X | BPF_OR, Reg: NewReg(a.Src, a.Dest)},
	}, nil
}

func (a *Or64Register) String() string {
	return fmt.Sprintf("%s |= %s", a.Dest, a.Src)
}
