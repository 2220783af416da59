package ebpf

import "fmt"

var _ Instruction = (*Neg64)(nil)

type Neg64 struct {
	Dest Register
}

func (a *Neg64) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_ALU64 | BPF_NEG, Reg: NewReg(0, a.Dest)},
	}, nil
}

func (a *Neg64) String() string {
	return fmt.Sprintf("%s = -%s", a.Dest, a.Dest)
}
