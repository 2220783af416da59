package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Rsh64)(nil)

type Rsh64 struct {
	ebpf.Rsh64
}

func (i *Rsh64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, rsh)
}

var _ Instruction = (*Rsh64Register)(nil)

type Rsh64Register struct {
	ebpf.Rsh64Register
}

func (i *Rsh64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, rsh)
}

// rsh is a logical shift, the vacated bits are always zero
func rsh(dv, operand int64) (int64, *Trap) {
	return int64(uint64(dv) >> (uint64(operand) & 63)), nil
}
