package emulator

import (
	"errors"
	"fmt"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

// Instruction represents an eBPF instruction, as apposed to the ebpf.Instruction interface, these instruction can
// actually be executed by an emulator VM.
type Instruction interface {
	ebpf.Instruction

	// Execute interprets the instruction against the state of vm. The program counter of vm points at the
	// instruction itself, the returned directive decides where execution continues.
	Execute(vm *VM) Directive
}

// Translate translates the High level instructions of the ebpf package and embeds them into instructions defined
// by the emulator package. The emulator instructions contain the logic to actually execute them.
func Translate(prog []ebpf.Instruction) ([]Instruction, error) {
	vmProg := make([]Instruction, len(prog))

	for i, intInst := range prog {
		var newInst Instruction

		switch inst := intInst.(type) {
		case *ebpf.Add64:
			newInst = &Add64{Add64: *inst}
		case *ebpf.Add64Register:
			newInst = &Add64Register{Add64Register: *inst}
		case *ebpf.And64:
			newInst = &And64{And64: *inst}
		case *ebpf.And64Register:
			newInst = &And64Register{And64Register: *inst}
		case *ebpf.ARSH64:
			newInst = &ARSH64{ARSH64: *inst}
		case *ebpf.ARSH64Register:
			newInst = &ARSH64Register{ARSH64Register: *inst}
		case *ebpf.CallHelper:
			newInst = &CallHelper{CallHelper: *inst}
		case *ebpf.Div64:
			newInst = &Div64{Div64: *inst}
		case *ebpf.Div64Register:
			newInst = &Div64Register{Div64Register: *inst}
		case *ebpf.EndToLE:
			newInst = &EndToLE{EndToLE: *inst}
		case *ebpf.EndToBE:
			newInst = &EndToBE{EndToBE: *inst}
		case *ebpf.Exit:
			newInst = &Exit{Exit: *inst}
		case *ebpf.Invalid:
			newInst = &Invalid{Invalid: *inst}
		case *ebpf.Jump:
			newInst = &Jump{Jump: *inst}
		case *ebpf.JumpEqual:
			newInst = &JumpEqual{JumpEqual: *inst}
		case *ebpf.JumpEqualRegister:
			newInst = &JumpEqualRegister{JumpEqualRegister: *inst}
		case *ebpf.JumpNotEqual:
			newInst = &JumpNotEqual{JumpNotEqual: *inst}
		case *ebpf.JumpNotEqualRegister:
			newInst = &JumpNotEqualRegister{JumpNotEqualRegister: *inst}
		case *ebpf.JumpGreaterThanEqual:
			newInst = &JumpGreaterThanEqual{JumpGreaterThanEqual: *inst}
		case *ebpf.JumpGreaterThanEqualRegister:
			newInst = &JumpGreaterThanEqualRegister{JumpGreaterThanEqualRegister: *inst}
		case *ebpf.JumpGreaterThan:
			newInst = &JumpGreaterThan{JumpGreaterThan: *inst}
		case *ebpf.JumpGreaterThanRegister:
			newInst = &JumpGreaterThanRegister{JumpGreaterThanRegister: *inst}
		case *ebpf.JumpIfAnd:
			newInst = &JumpIfAnd{JumpIfAnd: *inst}
		case *ebpf.JumpIfAndRegister:
			newInst = &JumpIfAndRegister{JumpIfAndRegister: *inst}
		case *ebpf.JumpSignedGreaterThanOrEqual:
			newInst = &JumpSignedGreaterThanOrEqual{JumpSignedGreaterThanOrEqual: *inst}
		case *ebpf.JumpSignedGreaterThanOrEqualRegister:
			newInst = &JumpSignedGreaterThanOrEqualRegister{JumpSignedGreaterThanOrEqualRegister: *inst}
		case *ebpf.JumpSignedGreaterThan:
			newInst = &JumpSignedGreaterThan{JumpSignedGreaterThan: *inst}
		case *ebpf.JumpSignedGreaterThanRegister:
			newInst = &JumpSignedGreaterThanRegister{JumpSignedGreaterThanRegister: *inst}
		case *ebpf.JumpSignedSmallerThanOrEqual:
			newInst = &JumpSignedSmallerThanOrEqual{JumpSignedSmallerThanOrEqual: *inst}
		case *ebpf.JumpSignedSmallerThanOrEqualRegister:
			newInst = &JumpSignedSmallerThanOrEqualRegister{JumpSignedSmallerThanOrEqualRegister: *inst}
		case *ebpf.JumpSignedSmallerThan:
			newInst = &JumpSignedSmallerThan{JumpSignedSmallerThan: *inst}
		case *ebpf.JumpSignedSmallerThanRegister:
			newInst = &JumpSignedSmallerThanRegister{JumpSignedSmallerThanRegister: *inst}
		case *ebpf.JumpSmallerThan:
			newInst = &JumpSmallerThan{JumpSmallerThan: *inst}
		case *ebpf.JumpSmallerThanRegister:
			newInst = &JumpSmallerThanRegister{JumpSmallerThanRegister: *inst}
		case *ebpf.JumpSmallerThanEqual:
			newInst = &JumpSmallerThanEqual{JumpSmallerThanEqual: *inst}
		case *ebpf.JumpSmallerThanEqualRegister:
			newInst = &JumpSmallerThanEqualRegister{JumpSmallerThanEqualRegister: *inst}
		case *ebpf.LoadConstant64bit:
			newInst = &LoadConstant64bit{LoadConstant64bit: *inst}
		case *ebpf.LoadMemory:
			newInst = &LoadMemory{LoadMemory: *inst}
		case *ebpf.LoadSocketBuf:
			newInst = &LoadSocketBuf{LoadSocketBuf: *inst}
		case *ebpf.LoadSocketBufConstant:
			newInst = &LoadSocketBufConstant{LoadSocketBufConstant: *inst}
		case *ebpf.Lsh64:
			newInst = &Lsh64{Lsh64: *inst}
		case *ebpf.Lsh64Register:
			newInst = &Lsh64Register{Lsh64Register: *inst}
		case *ebpf.Mod64:
			newInst = &Mod64{Mod64: *inst}
		case *ebpf.Mod64Register:
			newInst = &Mod64Register{Mod64Register: *inst}
		case *ebpf.Mov64:
			newInst = &Mov64{Mov64: *inst}
		case *ebpf.Mov64Register:
			newInst = &Mov64Register{Mov64Register: *inst}
		case *ebpf.Mul64:
			newInst = &Mul64{Mul64: *inst}
		case *ebpf.Mul64Register:
			newInst = &Mul64Register{Mul64Register: *inst}
		case *ebpf.Neg64:
			newInst = &Neg64{Neg64: *inst}
		case *ebpf.Nop:
			newInst = &Nop{Nop: *inst}
		case *ebpf.Or64:
			newInst = &Or64{Or64: *inst}
		case *ebpf.Or64Register:
			newInst = &Or64Register{Or64Register: *inst}
		case *ebpf.Rsh64:
			newInst = &Rsh64{Rsh64: *inst}
		case *ebpf.Rsh64Register:
			newInst = &Rsh64Register{Rsh64Register: *inst}
		case *ebpf.StoreMemoryConstant:
			newInst = &StoreMemoryConstant{StoreMemoryConstant: *inst}
		case *ebpf.StoreMemoryRegister:
			newInst = &StoreMemoryRegister{StoreMemoryRegister: *inst}
		case *ebpf.Sub64:
			newInst = &Sub64{Sub64: *inst}
		case *ebpf.Sub64Register:
			newInst = &Sub64Register{Sub64Register: *inst}
		case *ebpf.Xor64:
			newInst = &Xor64{Xor64: *inst}
		case *ebpf.Xor64Register:
			newInst = &Xor64Register{Xor64Register: *inst}
		default:
			return nil, fmt.Errorf("can't translate instruction at %d of type %T", i, inst)
		}

		vmProg[i] = newInst
	}

	return vmProg, nil
}

// aluImm applies op to the destination register and an immediate operand, which is sign-extended to 64 bits.
func aluImm(vm *VM, dest ebpf.Register, imm int32, op func(dv, operand int64) (int64, *Trap)) Directive {
	dv, trap := readReg(vm, dest)
	if trap != nil {
		return Fault(trap)
	}

	v, trap := op(dv, int64(imm))
	if trap != nil {
		return Fault(trap)
	}

	vm.Registers.R[dest] = v
	return Continue()
}

// aluReg applies op to the destination and source registers.
func aluReg(vm *VM, dest, src ebpf.Register, op func(dv, sv int64) (int64, *Trap)) Directive {
	dv, trap := readReg(vm, dest)
	if trap != nil {
		return Fault(trap)
	}

	sv, trap := readReg(vm, src)
	if trap != nil {
		return Fault(trap)
	}

	v, trap := op(dv, sv)
	if trap != nil {
		return Fault(trap)
	}

	vm.Registers.R[dest] = v
	return Continue()
}

// branchImm jumps offset instructions past the next one if cond holds for the destination register and the
// sign-extended immediate.
func branchImm(vm *VM, dest ebpf.Register, imm int32, offset int16, cond func(dv, operand int64) bool) Directive {
	dv, trap := readReg(vm, dest)
	if trap != nil {
		return Fault(trap)
	}

	if cond(dv, int64(imm)) {
		return JumpTo(vm.Registers.PC + 1 + int(offset))
	}

	return Continue()
}

// branchReg is the register operand version of branchImm.
func branchReg(vm *VM, dest, src ebpf.Register, offset int16, cond func(dv, sv int64) bool) Directive {
	dv, trap := readReg(vm, dest)
	if trap != nil {
		return Fault(trap)
	}

	sv, trap := readReg(vm, src)
	if trap != nil {
		return Fault(trap)
	}

	if cond(dv, sv) {
		return JumpTo(vm.Registers.PC + 1 + int(offset))
	}

	return Continue()
}

// memFault turns an error returned by a Memory into a trap directive.
func memFault(err error, addr int64, size ebpf.Size) Directive {
	var trap *Trap
	if errors.As(err, &trap) {
		return Fault(trap)
	}

	return Fault(memoryFault(addr, size))
}
