package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpSmallerThanEqual)(nil)

type JumpSmallerThanEqual struct {
	ebpf.JumpSmallerThanEqual
}

func (i *JumpSmallerThanEqual) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, smallerThanEqual)
}

var _ Instruction = (*JumpSmallerThanEqualRegister)(nil)

type JumpSmallerThanEqualRegister struct {
	ebpf.JumpSmallerThanEqualRegister
}

func (i *JumpSmallerThanEqualRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, smallerThanEqual)
}

func smallerThanEqual(dv, operand int64) bool {
	return uint64(dv) <= uint64(operand)
}
