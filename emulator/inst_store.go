package emulator

import (
	"github.com/dylandreimerink/gobpfvm/ebpf"
)

var _ Instruction = (*StoreMemoryConstant)(nil)

type StoreMemoryConstant struct {
	ebpf.StoreMemoryConstant
}

func (i *StoreMemoryConstant) Execute(vm *VM) Directive {
	dv, trap := readReg(vm, i.Dest)
	if trap != nil {
		return Fault(trap)
	}

	// The immediate is sign-extended before being truncated to the store width
	return store(vm, dv+int64(i.Offset), uint64(int64(i.Value)), i.Size)
}

var _ Instruction = (*StoreMemoryRegister)(nil)

type StoreMemoryRegister struct {
	ebpf.StoreMemoryRegister
}

func (i *StoreMemoryRegister) Execute(vm *VM) Directive {
	dv, trap := readReg(vm, i.Dest)
	if trap != nil {
		return Fault(trap)
	}

	sv, trap := readReg(vm, i.Src)
	if trap != nil {
		return Fault(trap)
	}

	return store(vm, dv+int64(i.Offset), uint64(sv), i.Size)
}

func store(vm *VM, addr int64, value uint64, size ebpf.Size) Directive {
	if err := vm.Memory.Write(addr, value, size); err != nil {
		return memFault(err, addr, size)
	}

	return Continue()
}
