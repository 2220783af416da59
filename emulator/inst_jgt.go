package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

// The unsigned comparisons compare the 64-bit patterns of both operands, the immediate is sign-extended first.
var _ Instruction = (*JumpGreaterThan)(nil)

type JumpGreaterThan struct {
	ebpf.JumpGreaterThan
}

func (i *JumpGreaterThan) Execute(vm *VM) Directive {
	return branchImm(vm, i.Dest, i.Value, i.Offset, greaterThan)
}

var _ Instruction = (*JumpGreaterThanRegister)(nil)

type JumpGreaterThanRegister struct {
	ebpf.JumpGreaterThanRegister
}

func (i *JumpGreaterThanRegister) Execute(vm *VM) Directive {
	return branchReg(vm, i.Dest, i.Src, i.Offset, greaterThan)
}

func greaterThan(dv, operand int64) bool {
	return uint64(dv) > uint64(operand)
}
