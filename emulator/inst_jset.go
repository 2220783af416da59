package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpIfAnd)(nil)

type JumpIfAnd struct {
	ebpf.JumpIfAnd
}

func (i *JumpIfAnd) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, ifAnd)
}

var _ Instruction = (*JumpIfAndRegister)(nil)

type JumpIfAndRegister struct {
	ebpf.JumpIfAndRegister
}

func (i *JumpIfAndRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, ifAnd)
}

func ifAnd(dv, operand int64) bool {
	return dv&operand != 0
}
