package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Neg64)(nil)

type Neg64 struct {
	ebpf.Neg64
}

func (i *Neg64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, 0, func(dv, _ int64) (int64, *Trap) {
		return -dv, nil
	})
}
