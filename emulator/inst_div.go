package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Div64)(nil)

type Div64 struct {
	ebpf.Div64
}

func (i *Div64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, div)
}

var _ Instruction = (*Div64Register)(nil)

type Div64Register struct {
	ebpf.Div64Register
}

func (i *Div64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, div)
}

// div divides the unsigned 64-bit patterns of both operands
func div(dv, operand int64) (int64, *Trap) {
	if operand == 0 {
		return 0, divisionByZero()
	}

	return int64(uint64(dv) / uint64(operand)), nil
}
