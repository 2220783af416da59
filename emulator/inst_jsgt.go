package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpSignedGreaterThan)(nil)

type JumpSignedGreaterThan struct {
	ebpf.JumpSignedGreaterThan
}

func (i *JumpSignedGreaterThan) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, signedGreaterThan)
}

var _ Instruction = (*JumpSignedGreaterThanRegister)(nil)

type JumpSignedGreaterThanRegister struct {
	ebpf.JumpSignedGreaterThanRegister
}

func (i *JumpSignedGreaterThanRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, signedGreaterThan)
}

func signedGreaterThan(dv, operand int64) bool {
	return dv > operand
}
