package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*LoadConstant64bit)(nil)

type LoadConstant64bit struct {
	ebpf.LoadConstant64bit
}

// Execute loads the 64-bit immediate and skips the filler slot which holds the upper half
func (i *LoadConstant64bit) Execute(vm *VM) Directive {
	if trap := vm.Registers.Assign(i.Dest, i.Value()); trap != nil {
		return Fault(trap)
	}

	return JumpTo(vm.Registers.PC + 2)
}

var _ Instruction = (*LoadMemory)(nil)

type LoadMemory struct {
	ebpf.LoadMemory
}

func (i *LoadMemory) Execute(vm *VM) Directive {
	sv, trap := readReg(vm, i.Src)
	if trap != nil {
		return Fault(trap)
	}

	if !i.Dest.Valid() {
		return Fault(invalidRegister(i.Dest))
	}

	addr := sv + int64(i.Offset)
	v, err := vm.Memory.Read(addr, i.Size)
	if err != nil {
		return memFault(err, addr, i.Size)
	}

	vm.Registers.R[i.Dest] = int64(v)
	return Continue()
}

var _ Instruction = (*LoadSocketBuf)(nil)

// LoadSocketBuf loads from the packet buffer at a register offset into r0
type LoadSocketBuf struct {
	ebpf.LoadSocketBuf
}

func (i *LoadSocketBuf) Execute(vm *VM) Directive {
	sv, trap := readReg(vm, i.Src)
	if trap != nil {
		return Fault(trap)
	}

	return loadPacket(vm, sv+int64(i.Offset), i.Size)
}

var _ Instruction = (*LoadSocketBufConstant)(nil)

// LoadSocketBufConstant loads from the packet buffer at a fixed offset into r0
type LoadSocketBufConstant struct {
	ebpf.LoadSocketBufConstant
}

func (i *LoadSocketBufConstant) Execute(vm *VM) Directive {
	return loadPacket(vm, int64(i.Value), i.Size)
}

func loadPacket(vm *VM, addr int64, size ebpf.Size) Directive {
	v, err := vm.packetMemory().Read(addr, size)
	if err != nil {
		return memFault(err, addr, size)
	}

	vm.Registers.R[ebpf.BPF_REG_0] = int64(v)
	return Continue()
}
