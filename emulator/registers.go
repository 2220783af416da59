package emulator

import (
	"fmt"
	"strings"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

// Registers the registers of the VM
// https://github.com/torvalds/linux/blob/master/Documentation/bpf/instruction-set.rst#Registers-and-calling-convention
//
// R0 holds return values of helper calls and the exit code of the program, R1 - R5 are helper arguments, R6 - R9 are
// callee saved by convention and R10 is the frame pointer by convention. None of these conventions are enforced, all
// registers are plain signed 64-bit integers which start at 0.
type Registers struct {
	// Program counter, keeps track of which instruction to execute next, can't be read, only be modified
	// via branching instructions.
	PC int

	R [ebpf.NumRegisters]int64
}

// Get returns the value of reg, or an invalid register trap if reg is not part of the register file
func (r *Registers) Get(reg ebpf.Register) (int64, *Trap) {
	if !reg.Valid() {
		return 0, invalidRegister(reg)
	}

	return r.R[reg], nil
}

// Assign is used to assign a value to a register directly
func (r *Registers) Assign(reg ebpf.Register, value int64) *Trap {
	if !reg.Valid() {
		return invalidRegister(reg)
	}

	r.R[reg] = value

	return nil
}

func (r *Registers) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " pc: %d\n", r.PC)
	for i, v := range r.R {
		fmt.Fprintf(&sb, "%3s: 0x%016x (s%d / u%d)\n", ebpf.Register(i), uint64(v), v, uint64(v))
	}

	return sb.String()
}

func readReg(vm *VM, reg ebpf.Register) (int64, *Trap) {
	return vm.Registers.Get(reg)
}
