package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Xor64)(nil)

type Xor64 struct {
	ebpf.Xor64
}

func (i *Xor64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, xor)
}

var _ Instruction = (*Xor64Register)(nil)

type Xor64Register struct {
	ebpf.Xor64Register
}

func (i *Xor64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, xor)
}

func xor(dv, operand int64) (int64, *Trap) {
	return dv ^ operand, nil
}
