package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpNotEqual)(nil)

type JumpNotEqual struct {
	ebpf.JumpNotEqual
}

func (i *JumpNotEqual) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, notEqual)
}

var _ Instruction = (*JumpNotEqualRegister)(nil)

type JumpNotEqualRegister struct {
	ebpf.JumpNotEqualRegister
}

func (i *JumpNotEqualRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, notEqual)
}

func notEqual(dv, operand int64) bool {
	return dv != operand
}
