package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*Nop)(nil)

// Nop is only reachable by jumping into the second half of a LoadConstant64bit
type Nop struct {
	ebpf.Nop
}

func (i *Nop) Execute(vm *VM) Directive {
	return Continue()
}

var _ Instruction = (*Invalid)(nil)

type Invalid struct {
	ebpf.Invalid
}

func (i *Invalid) Execute(vm *VM) Directive {
	return Fault(invalidOpcode(i.Op))
}
