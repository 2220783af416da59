package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpEqual)(nil)

type JumpEqual struct {
	ebpf.JumpEqual
}

func (i *JumpEqual) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, equal)
}

var _ Instruction = (*JumpEqualRegister)(nil)

type JumpEqualRegister struct {
	ebpf.JumpEqualRegister
}

func (i *JumpEqualRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, equal)
}

func equal(dv, operand int64) bool {
	return dv == operand
}
