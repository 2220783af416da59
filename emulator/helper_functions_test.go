package emulator

import (
	"errors"
	"testing"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

func TestCallWithoutResolver(t *testing.T) {
	res := mustRun(t, VMSettings{},
		&ebpf.CallHelper{Function: 1},
		&ebpf.Exit{},
	)

	if !errors.Is(res.Err, ErrUnsupportedCall) {
		t.Fatalf("expected ErrUnsupportedCall, got %s: %v", res.State, res.Err)
	}
	if res.Trap.CallID != 1 || res.Trap.Opcode != 0x85 {
		t.Fatalf("unexpected trap %+v", res.Trap)
	}
}

func TestCallUnknownID(t *testing.T) {
	res := mustRun(t, DefaultVMSettings(),
		&ebpf.CallHelper{Function: 99},
		&ebpf.Exit{},
	)

	if !errors.Is(res.Err, ErrUnsupportedCall) || res.Trap.CallID != 99 {
		t.Fatalf("expected unsupported call 99, got %v", res.Err)
	}
}

func TestCallHelperTable(t *testing.T) {
	helpers := HelperTable{
		7: func(regs [ebpf.NumRegisters]int64) int64 {
			sum := regs[1] + regs[2]
			// Helpers get a copy, changes must not leak into the VM
			regs[6] = 1000
			return sum
		},
	}

	res := mustRun(t, VMSettings{Helpers: helpers},
		&ebpf.Mov64{Dest: ebpf.BPF_REG_1, Value: 40},
		&ebpf.Mov64{Dest: ebpf.BPF_REG_2, Value: 2},
		&ebpf.CallHelper{Function: 7},
		&ebpf.Exit{},
	)

	if res.State != StateHalted || res.ExitCode != 42 {
		t.Fatalf("expected halt with 42, got %s with %d: %v", res.State, res.ExitCode, res.Err)
	}
	if res.Registers[6] != 0 {
		t.Fatalf("helper changed r6 to %d", res.Registers[6])
	}
}

func TestHelperTableNilEntry(t *testing.T) {
	if _, ok := (HelperTable{1: nil}).Resolve(1); ok {
		t.Fatal("nil helper must not resolve")
	}
}

func TestPrandom(t *testing.T) {
	var regs [ebpf.NumRegisters]int64

	regs[1] = 12345
	a := Prandom(regs)
	b := Prandom(regs)
	if a != b {
		t.Fatal("same seed must give the same number")
	}

	regs[1] = 12346
	if Prandom(regs) == a {
		t.Fatal("different seeds should give different numbers")
	}

	regs[1] = 0
	if Prandom(regs) == 0 {
		t.Fatal("zero seed must not get stuck at zero")
	}
}

func TestKtime(t *testing.T) {
	var regs [ebpf.NumRegisters]int64

	a := Ktime(regs)
	b := Ktime(regs)
	if a < 0 || b < a {
		t.Fatalf("ktime must be monotonic, got %d then %d", a, b)
	}
}

func TestBuiltinHelpers(t *testing.T) {
	res := mustRun(t, DefaultVMSettings(),
		&ebpf.Mov64{Dest: ebpf.BPF_REG_1, Value: 1},
		&ebpf.Mov64{Dest: ebpf.BPF_REG_0, Value: 5},
		&ebpf.CallHelper{Function: HelperTrace},
		&ebpf.Mov64Register{Dest: ebpf.BPF_REG_6, Src: ebpf.BPF_REG_0},
		&ebpf.CallHelper{Function: HelperPrandom},
		&ebpf.Exit{},
	)

	if res.State != StateHalted {
		t.Fatalf("expected halted, got %s: %v", res.State, res.Err)
	}
	if res.Registers[6] != 0 {
		t.Fatalf("trace must return 0, got %d", res.Registers[6])
	}

	var regs [ebpf.NumRegisters]int64
	regs[1] = 1
	if res.ExitCode != Prandom(regs) {
		t.Fatalf("want %d, got %d", Prandom(regs), res.ExitCode)
	}

	if _, ok := BuiltinHelper(HelperKtime); !ok {
		t.Fatal("ktime must be a built-in helper")
	}
	if _, ok := BuiltinHelper(4); ok {
		t.Fatal("unexpected built-in helper 4")
	}
}
