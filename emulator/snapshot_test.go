package emulator

import (
	"errors"
	"testing"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

func TestSnapshotFaulted(t *testing.T) {
	res := mustRun(t, VMSettings{},
		&ebpf.Mov64{Dest: ebpf.BPF_REG_1, Value: 3},
		&ebpf.StoreMemoryRegister{Dest: ebpf.BPF_REG_0, Src: ebpf.BPF_REG_1, Offset: 1, Size: ebpf.BPF_B},
		&ebpf.Div64{Dest: ebpf.BPF_REG_1, Value: 0},
		&ebpf.Exit{},
	)

	data, err := res.MarshalSnapshot()
	if err != nil {
		t.Fatal(err)
	}

	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatal(err)
	}

	if got.State != StateFaulted || got.Steps != res.Steps || got.Registers != res.Registers {
		t.Fatalf("snapshot mismatch: %+v", got)
	}
	if got.Trap == nil || *got.Trap != *res.Trap {
		t.Fatalf("trap mismatch: want %+v, got %+v", res.Trap, got.Trap)
	}
	if !errors.Is(got.Err, ErrDivisionByZero) {
		t.Fatalf("restored error must match the trap kind, got %v", got.Err)
	}
	if len(got.Memory) != MemorySize || got.Memory[1] != 3 {
		t.Fatal("memory not restored")
	}
}

func TestSnapshotAborted(t *testing.T) {
	res := mustRun(t, VMSettings{MaxSteps: 3}, &ebpf.Jump{Offset: -1})

	data, err := res.MarshalSnapshot()
	if err != nil {
		t.Fatal(err)
	}

	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatal(err)
	}

	if got.State != StateAborted || got.Trap != nil {
		t.Fatalf("unexpected state %s, trap %v", got.State, got.Trap)
	}
	if got.Err == nil || got.Err.Error() != res.Err.Error() {
		t.Fatalf("want error %q, got %v", res.Err, got.Err)
	}
}

func TestUnmarshalSnapshotGarbage(t *testing.T) {
	if _, err := UnmarshalSnapshot([]byte{0xff, 0x00}); err == nil {
		t.Fatal("expected error")
	}
}
