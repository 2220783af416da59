package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*JumpSmallerThan)(nil)

type JumpSmallerThan struct {
	ebpf.JumpSmallerThan
}

func (i *JumpSmallerThan) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, smallerThan)
}

var _ Instruction = (*JumpSmallerThanRegister)(nil)

type JumpSmallerThanRegister struct {
	ebpf.JumpSmallerThanRegister
}

func (i *JumpSmallerThanRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, smallerThan)
}

func smallerThan(dv, operand int64) bool {
	return uint64(dv) < uint64(operand)
}
