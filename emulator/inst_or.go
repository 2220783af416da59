package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Or64)(nil)

type Or64 struct {
	ebpf.Or64
}

func (i *Or64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, or)
}

var _ Instruction = (*Or64Register)(nil)

type Or64Register struct {
	ebpf.Or64Register
}

func (i *Or64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, or)
}

func or(dv, operand int64) (int64, *Trap) {
	return dv | operand, nil
}
