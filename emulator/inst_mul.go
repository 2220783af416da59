package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Mul64)(nil)

type Mul64 struct {
	ebpf.Mul64
}

func (i *Mul64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, mul)
}

var _ Instruction = (*Mul64Register)(nil)

type Mul64Register struct {
	ebpf.Mul64Register
}

func (i *Mul64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, mul)
}

func mul(dv, operand int64) (int64, *Trap) {
	return dv * operand, nil
}
