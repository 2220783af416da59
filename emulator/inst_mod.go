package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Mod64)(nil)

type Mod64 struct {
	ebpf.Mod64
}

func (i *Mod64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, mod)
}

var _ Instruction = (*Mod64Register)(nil)

type Mod64Register struct {
	ebpf.Mod64Register
}

func (i *Mod64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, mod)
}

// mod takes the remainder of the unsigned 64-bit patterns of both operands
func mod(dv, operand int64) (int64, *Trap) {
	if operand == 0 {
		return 0, divisionByZero()
	}

	return int64(uint64(dv) % uint64(operand)), nil
}
