package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpSignedGreaterThanOrEqual)(nil)

type JumpSignedGreaterThanOrEqual struct {
	ebpf.JumpSignedGreaterThanOrEqual
}

func (i *JumpSignedGreaterThanOrEqual) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, signedGreaterThanEqual)
}

var _ Instruction = (*JumpSignedGreaterThanOrEqualRegister)(nil)

type JumpSignedGreaterThanOrEqualRegister struct {
	ebpf.JumpSignedGreaterThanOrEqualRegister
}

func (i *JumpSignedGreaterThanOrEqualRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, signedGreaterThanEqual)
}

func signedGreaterThanEqual(dv, operand int64) bool {
	return dv >= operand
}
