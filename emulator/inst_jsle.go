package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpSignedSmallerThanOrEqual)(nil)

type JumpSignedSmallerThanOrEqual struct {
	ebpf.JumpSignedSmallerThanOrEqual
}

func (i *JumpSignedSmallerThanOrEqual) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, signedSmallerThanEqual)
}

var _ Instruction = (*JumpSignedSmallerThanOrEqualRegister)(nil)

type JumpSignedSmallerThanOrEqualRegister struct {
	ebpf.JumpSignedSmallerThanOrEqualRegister
}

func (i *JumpSignedSmallerThanOrEqualRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, signedSmallerThanEqual)
}

func signedSmallerThanEqual(dv, operand int64) bool {
	return dv <= operand
}
