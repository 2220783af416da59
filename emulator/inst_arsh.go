package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*ARSH64)(nil)

type ARSH64 struct {
	ebpf.ARSH64
}

func (i *ARSH64) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, i.Value, arsh)
}

var _ Instruction = (*ARSH64Register)(nil)

type ARSH64Register struct {
	ebpf.ARSH64Register
}

func (i *ARSH64Register) Execute(vm *VM) Directive {
	return aluReg(vm, i.Dest, i.Src, arsh)
}

// arsh is an arithmetic shift, the sign bit is copied into the vacated bits
func arsh(dv, operand int64) (int64, *Trap) {
	return dv >> (uint64(operand) & 63), nil
}
