// package emulator contains a userspace interpreter for eBPF style bytecode.
//
// Programs are decoded once into a Program and executed by a VM, which owns a register file of 11 signed 64-bit
// registers and a zeroed linear memory of MemorySize bytes. Every instruction returns a Directive which tells the VM
// to continue, jump, call a helper, halt or trap. Runtime failures never panic, they end the run in the faulted
// state with a *Trap describing the cause.
//
// Use cases:
// * Debugging, programs can be stepped through one instruction at a time and the VM can be cloned at any point.
// * Dynamic program extension, small plugin programs can be run inside go programs with host supplied helper
//   functions, much like how some people use lua or javascript.
package emulator
