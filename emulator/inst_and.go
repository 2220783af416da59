package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*And64)(nil)

type And64 struct {
	ebpf.And64
}

func (i *And64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, and)
}

var _ Instruction = (*And64Register)(nil)

type And64Register struct {
	ebpf.And64Register
}

func (i *And64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, and)
}

func and(dv, operand int64) (int64, *Trap) {
	return dv & operand, nil
}
