package emulator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dylandreimerink/gobpfvm/ebpf"
	"github.com/tliron/commonlog"
)

// State is the execution state of a VM
type State uint8

const (
	// StateReady is the state of a freshly created or reset VM
	StateReady State = iota
	// StateRunning means at least one instruction has been executed and the program has not stopped yet
	StateRunning
	// StateHalted means the program exited normally, ExitCode is valid
	StateHalted
	// StateFaulted means the program was stopped by a Trap
	StateFaulted
	// StateAborted means the host stopped the program, because of the step budget or a canceled context
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateFaulted:
		return "faulted"
	case StateAborted:
		return "aborted"
	}

	return fmt.Sprintf("state(%d)", uint8(s))
}

// Terminal returns true if no more instructions will be executed in this state
func (s State) Terminal() bool {
	return s == StateHalted || s == StateFaulted || s == StateAborted
}

// ErrStepBudgetExhausted is the error of a run which executed VMSettings.MaxSteps instructions without stopping
var ErrStepBudgetExhausted = errors.New("step budget exhausted")

// VM is a virtual machine which can run eBPF code. A VM is not safe for concurrent use, but any number of VMs may
// share the same Program.
type VM struct {
	settings VMSettings

	Program   *Program
	Registers Registers
	// Linear memory, accessed by the LDX, ST and STX instructions
	Memory Memory
	// Read-only packet buffer for LDABS and LDIND, nil if the settings have no packet
	Packet Memory

	State    State
	ExitCode int64
	Trap     *Trap
	Err      error
	Steps    uint64
}

// NewVM creates a VM which is ready to execute prog
func NewVM(prog *Program, settings VMSettings) *VM {
	vm := &VM{
		settings: settings,
		Program:  prog,
	}

	// Reset will make the VM ready to start execution of a program
	vm.Reset()

	return vm
}

// Reset zeroes all registers and memory so the program can be executed again from the start
func (vm *VM) Reset() {
	vm.Registers = Registers{}

	if vm.Memory == nil {
		vm.Memory = NewByteMemory("memory", MemorySize)
	} else {
		mem := vm.Memory.Bytes()
		for i := range mem {
			mem[i] = 0
		}
	}

	vm.Packet = nil
	if vm.settings.Packet != nil {
		vm.Packet = &ByteMemory{
			MemName: "packet",
			Backing: vm.settings.Packet,
		}
	}

	vm.State = StateReady
	vm.ExitCode = 0
	vm.Trap = nil
	vm.Err = nil
	vm.Steps = 0
}

// packetMemory returns the memory used by LDABS and LDIND. Without a configured packet the linear memory is used.
func (vm *VM) packetMemory() Memory {
	if vm.Packet != nil {
		return vm.Packet
	}

	return vm.Memory
}

// Run executes the program until it halts, faults or exhausts the step budget
func (vm *VM) Run() *Result {
	return vm.RunContext(context.Background())
}

// RunContext is like Run, but also stops when ctx is canceled or its deadline is exceeded
func (vm *VM) RunContext(ctx context.Context) *Result {
	start := time.Now()

	for !vm.State.Terminal() {
		// If context was canceled or deadline exceeded, stop execution
		if err := ctx.Err(); err != nil {
			vm.abort(err)
			break
		}

		if stop, _ := vm.Step(); stop {
			break
		}
	}

	switch vm.State {
	case StateHalted:
		log.Infof("program halted after %d steps, exit code %d", vm.Steps, vm.ExitCode)
	default:
		log.Warningf("program %s after %d steps: %s", vm.State, vm.Steps, vm.Err)
	}

	res := vm.Result()
	emitRunMetrics(res, start)

	return res
}

// Step executes a single instruction, allowing us to "step" through the program. stop is true once the VM reached
// a terminal state, err is the trap or abort reason if the program didn't halt normally.
func (vm *VM) Step() (stop bool, err error) {
	if vm.State.Terminal() {
		return true, vm.Err
	}

	program := vm.Program.Instructions
	pc := vm.Registers.PC

	// Falling off the end of the program is a normal exit
	if pc >= len(program) {
		vm.halt(vm.Registers.R[ebpf.BPF_REG_0])
		return true, nil
	}

	if budget := vm.settings.MaxSteps; budget > 0 && vm.Steps >= budget {
		vm.abort(ErrStepBudgetExhausted)
		return true, vm.Err
	}

	vm.State = StateRunning

	inst := program[pc]
	if log.AllowLevel(commonlog.Debug) {
		log.Debugf("%5d: %s", pc, inst)
	}

	d := inst.Execute(vm)
	vm.Steps++

	switch d.Kind {
	case DirectiveContinue:
		vm.Registers.PC = pc + 1

	case DirectiveJump:
		if d.Target < 0 {
			vm.fault(pc, inst, invalidJump(d.Target))
			return true, vm.Err
		}
		vm.Registers.PC = d.Target

	case DirectiveCall:
		f, ok := vm.resolve(d.CallID)
		if !ok {
			vm.fault(pc, inst, unsupportedCall(d.CallID))
			return true, vm.Err
		}
		vm.Registers.R[ebpf.BPF_REG_0] = f(vm.Registers.R)
		vm.Registers.PC = pc + 1

	case DirectiveHalt:
		vm.halt(d.Code)
		return true, nil

	case DirectiveTrap:
		vm.fault(pc, inst, d.Trap)
		return true, vm.Err
	}

	if vm.Registers.PC >= len(program) {
		vm.halt(vm.Registers.R[ebpf.BPF_REG_0])
		return true, nil
	}

	return false, nil
}

func (vm *VM) resolve(id int32) (HelperFunc, bool) {
	if vm.settings.Helpers == nil {
		return nil, false
	}

	return vm.settings.Helpers.Resolve(id)
}

func (vm *VM) halt(code int64) {
	vm.State = StateHalted
	vm.ExitCode = code
}

// fault stops the VM, the program counter keeps pointing at the offending instruction.
func (vm *VM) fault(pc int, inst Instruction, trap *Trap) {
	trap.PC = pc
	if raw, err := inst.Raw(); err == nil && len(raw) > 0 {
		trap.Opcode = raw[0].Op
	}

	vm.Registers.PC = pc
	vm.State = StateFaulted
	vm.Trap = trap
	vm.Err = trap
}

func (vm *VM) abort(err error) {
	vm.State = StateAborted
	vm.Err = fmt.Errorf("aborted at pc %d: %w", vm.Registers.PC, err)
}

// Result returns a snapshot of the current state of the VM
func (vm *VM) Result() *Result {
	mem := make([]byte, vm.Memory.Size())
	copy(mem, vm.Memory.Bytes())

	return &Result{
		Registers: vm.Registers.R,
		Memory:    mem,
		State:     vm.State,
		ExitCode:  vm.ExitCode,
		Trap:      vm.Trap,
		Err:       vm.Err,
		Steps:     vm.Steps,
	}
}

// Clone clones the whole VM, this includes the current state of the VM. This feature can be used to create snapshots
// of the VM. The program is shared since it is never modified.
func (vm *VM) Clone() *VM {
	clone := *vm
	clone.Memory = vm.Memory.Clone()
	if vm.Trap != nil {
		t := *vm.Trap
		clone.Trap = &t
		clone.Err = &t
	}

	return &clone
}

func (vm *VM) String() string {
	var sb strings.Builder
	sb.WriteString("Registers:\n")

	r := vm.Registers
	if r.PC < len(vm.Program.Instructions) {
		fmt.Fprintf(&sb, " PC: %d -> %s\n", r.PC, vm.Program.Instructions[r.PC])
	} else {
		fmt.Fprintf(&sb, " PC: %d\n", r.PC)
	}

	for i, v := range r.R {
		fmt.Fprintf(&sb, "%3s: 0x%016x (s%d / u%d)\n", ebpf.Register(i), uint64(v), v, uint64(v))
	}

	fmt.Fprintf(&sb, "State: %s", vm.State)
	switch vm.State {
	case StateHalted:
		fmt.Fprintf(&sb, " (exit code %d)", vm.ExitCode)
	case StateFaulted, StateAborted:
		fmt.Fprintf(&sb, " (%s)", vm.Err)
	}
	sb.WriteString("\n")

	return sb.String()
}

// A Result is the outcome of a run. Runtime failures are never returned as errors, they are reflected in State,
// Trap and Err.
type Result struct {
	Registers [ebpf.NumRegisters]int64
	Memory    []byte
	State     State
	ExitCode  int64
	Trap      *Trap
	Err       error
	Steps     uint64
}

// VMSettings are the host supplied limits and extensions of a VM
type VMSettings struct {
	// MaxSteps is the maximum number of instructions a run may execute, 0 means unlimited
	MaxSteps uint64
	// Helpers resolves the ids of CALL instructions, without a resolver every CALL traps
	Helpers CallResolver
	// Packet is the buffer read by LDABS and LDIND, the linear memory is used when nil. It is never written to.
	Packet []byte
}

// DefaultVMSettings returns settings without a step limit and with the built-in helper functions
func DefaultVMSettings() VMSettings {
	return VMSettings{
		Helpers: DefaultHelpers(),
	}
}

// Run decodes bytecode and executes it on a fresh VM. The error is only non-nil if bytecode can't be decoded, every
// runtime failure is reported in the Result.
func Run(bytecode []byte, settings VMSettings) (*Result, error) {
	prog, err := LoadProgram(bytecode)
	if err != nil {
		return nil, err
	}

	return NewVM(prog, settings).Run(), nil
}
