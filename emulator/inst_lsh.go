package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Lsh64)(nil)

type Lsh64 struct {
	ebpf.Lsh64
}

func (i *Lsh64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, lsh)
}

var _ Instruction = (*Lsh64Register)(nil)

type Lsh64Register struct {
	ebpf.Lsh64Register
}

func (i *Lsh64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, lsh)
}

// Only the low 6 bits of the shift amount are used
func lsh(dv, operand int64) (int64, *Trap) {
	return dv << (uint64(operand) & 63), nil
}
