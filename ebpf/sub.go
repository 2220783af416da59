package ebpf

import "fmt"

var _ Instruction = (*Sub64)(nil)

type Sub64 struct {
	Dest  Register
	Value int32
}

func (a *Sub64) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_ALU64 | BPF_K | BPF_SUB, Reg: NewReg(0, a.Dest), Imm: a.Value},
	}, nil
}

func (a *Sub64) String() string {
	return fmt.Sprintf("%s -= %d", a.Dest, a.Value)
}

var _ Instruction = (*Sub64Register)(nil)

type Sub64Register struct {
	Dest Register
	Src  Register
}

func (a *Sub64Register) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_ALU64 | BPF_X | BPF_SUB, Reg: NewReg(a.Src, a.Dest)},
	}, nil
}

func (a *Sub64Register) String() string {
	return fmt.Sprintf("%s -= %s", a.Dest, a.Src)
}
