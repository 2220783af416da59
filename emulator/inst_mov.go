package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Mov64)(nil)

type Mov64 struct {
	ebpf.Mov64
}

func (i *Mov64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, mov)
}

var _ Instruction = (*Mov64Register)(nil)

type Mov64Register struct {
	ebpf.Mov64Register
}

func (i *Mov64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, mov)
}

func mov(_, operand int64) (int64, *Trap) {
	return operand, nil
}
