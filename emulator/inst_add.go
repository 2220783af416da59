package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Add64)(nil)

type Add64 struct {
	ebpf.Add64
}

func (i *Add64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, add)
}

var _ Instruction = (*Add64Register)(nil)

type Add64Register struct {
	ebpf.Add64Register
}

func (i *Add64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, add)
}

// Addition wraps on overflow, like all ALU operations
func add(dv, operand int64) (int64, *Trap) {
	return dv + operand, nil
}
