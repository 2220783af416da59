package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpSignedSmallerThan)(nil)

type JumpSignedSmallerThan struct {
	ebpf.JumpSignedSmallerThan
}

func (i *JumpSignedSmallerThan) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, signedSmallerThan)
}

var _ Instruction = (*JumpSignedSmallerThanRegister)(nil)

type JumpSignedSmallerThanRegister struct {
	ebpf.JumpSignedSmallerThanRegister
}

func (i *JumpSignedSmallerThanRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, signedSmallerThan)
}

func signedSmallerThan(dv, operand int64) bool {
	return dv < operand
}
