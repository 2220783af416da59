package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Sub64)(nil)

type Sub64 struct {
	ebpf.Sub64
}

func (i *Sub64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, sub)
}

var _ Instruction = (*Sub64Register)(nil)

type Sub64Register struct {
	ebpf.Sub64Register
}

func (i *Sub64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, sub)
}

func sub(dv, operand int64) (int64, *Trap) {
	return dv - operand, nil
}
