package emulator

import (
	"math/bits"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

// The memory of the VM is always little-endian, so EndToLE only truncates the register to the requested width.
// EndToBE reverses the byte order of the low bytes. In both cases the upper bits are zeroed.

var _ Instruction = (*EndToLE)(nil)

type EndToLE struct {
	ebpf.EndToLE
}

func (i *EndToLE) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, 0, func(dv, _ int64) (int64, *Trap) {
		switch i.Width {
		case 16:
			return int64(uint16(dv)), nil
		case 32:
			return int64(uint32(dv)), nil
		case 64:
			return dv, nil
		}
		return 0, invalidOpcode(ebpf.BPF_ALU | ebpf.BPF_END | ebpf.BPF_TO_LE)
	})
}

var _ Instruction = (*EndToBE)(nil)

type EndToBE struct {
	ebpf.EndToBE
}

func (i *EndToBE) Execute(vm *VM) Directive {
	return aluImm(vm, i.Dest, 0, func(dv, _ int64) (int64, *Trap) {
		switch i.Width {
		case 16:
			return int64(bits.ReverseBytes16(uint16(dv))), nil
		case 32:
			return int64(bits.ReverseBytes32(uint32(dv))), nil
		case 64:
			return int64(bits.ReverseBytes64(uint64(dv))), nil
		}
		return 0, invalidOpcode(ebpf.BPF_ALU | ebpf.BPF_END | ebpf.BPF_TO_BE)
	})
}
