package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpGreaterThanEqual)(nil)

type JumpGreaterThanEqual struct {
	ebpf.JumpGreaterThanEqual
}

func (i *JumpGreaterThanEqual) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, greaterThanEqual)
}

var _ Instruction = (*JumpGreaterThanEqualRegister)(nil)

type JumpGreaterThanEqualRegister struct {
	ebpf.JumpGreaterThanEqualRegister
}

func (i *JumpGreaterThanEqualRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, greaterThanEqual)
}

func greaterThanEqual(dv, operand int64) bool {
	return uint64(dv) >= uint64(operand)
}
