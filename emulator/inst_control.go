package emulator

import "github.com/dylandreimerink/gobpfvm/ebpf"

var _ Instruction = (*Jump)(nil)

type Jump struct {
	ebpf.Jump
}

func (i *Jump) Execute(vm *VM) Directive {
	return JumpTo(vm.Registers.PC + 1 + int(i.Offset))
}

var _ Instruction = (*CallHelper)(nil)

// CallHelper only requests the call, the VM resolves the helper function and writes the result into r0.
type CallHelper struct {
	ebpf.CallHelper
}

func (i *CallHelper) Execute(vm *VM) Directive {
	return Call(i.Function)
}

var _ Instruction = (*Exit)(nil)

type Exit struct {
	ebpf.Exit
}

// Execute halts the program, r0 is the exit code
func (i *Exit) Execute(vm *VM) Directive {
	return Halt(vm.Registers.R[ebpf.BPF_REG_0])
}
