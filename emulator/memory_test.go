package emulator

import (
	"errors"
	"testing"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

func TestByteMemoryReadWrite(t *testing.T) {
	tests := []struct {
		name  string
		size  ebpf.Size
		value uint64
		want  uint64
		bytes []byte
	}{
		{name: "byte", size: ebpf.BPF_B, value: 0x1ff, want: 0xff, bytes: []byte{0xff}},
		{name: "half", size: ebpf.BPF_H, value: 0x11223344, want: 0x3344, bytes: []byte{0x44, 0x33}},
		{name: "word", size: ebpf.BPF_W, value: 0xfffffffe, want: 0xfffffffe, bytes: []byte{0xfe, 0xff, 0xff, 0xff}},
		{name: "double", size: ebpf.BPF_DW, value: 0x0102030405060708, want: 0x0102030405060708,
			bytes: []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := NewByteMemory("test", 16)

			if err := mem.Write(3, test.value, test.size); err != nil {
				t.Fatal(err)
			}

			got, err := mem.Read(3, test.size)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Fatalf("want 0x%x, got 0x%x", test.want, got)
			}

			for i, b := range test.bytes {
				if mem.Backing[3+i] != b {
					t.Fatalf("byte %d: want 0x%02x, got 0x%02x", i, b, mem.Backing[3+i])
				}
			}
			if mem.Backing[2] != 0 || mem.Backing[3+len(test.bytes)] != 0 {
				t.Fatal("write touched bytes outside of its width")
			}
		})
	}
}

func TestByteMemoryBounds(t *testing.T) {
	tests := []struct {
		name string
		addr int64
		size ebpf.Size
		ok   bool
	}{
		{name: "first byte", addr: 0, size: ebpf.BPF_B, ok: true},
		{name: "last byte", addr: 15, size: ebpf.BPF_B, ok: true},
		{name: "last double", addr: 8, size: ebpf.BPF_DW, ok: true},
		{name: "double straddles end", addr: 9, size: ebpf.BPF_DW},
		{name: "past end", addr: 16, size: ebpf.BPF_B},
		{name: "negative", addr: -1, size: ebpf.BPF_B},
		{name: "far away", addr: 1 << 40, size: ebpf.BPF_W},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := NewByteMemory("test", 16)
			for i := range mem.Backing {
				mem.Backing[i] = 0xaa
			}

			err := mem.Write(test.addr, 0, test.size)
			if test.ok {
				if err != nil {
					t.Fatal(err)
				}
				return
			}

			var trap *Trap
			if !errors.As(err, &trap) || trap.Kind != TrapMemoryFault {
				t.Fatalf("expected memory fault, got %v", err)
			}
			if trap.Address != test.addr || trap.Width != test.size.Bytes() {
				t.Fatalf("want addr %d width %d, got addr %d width %d", test.addr, test.size.Bytes(), trap.Address,
					trap.Width)
			}

			for i, b := range mem.Backing {
				if b != 0xaa {
					t.Fatalf("faulting write changed byte %d", i)
				}
			}

			if _, err = mem.Read(test.addr, test.size); !errors.Is(err, ErrMemoryFault) {
				t.Fatalf("expected read to fault as well, got %v", err)
			}
		})
	}
}

func TestLoadStore(t *testing.T) {
	res := mustRun(t, VMSettings{},
		&ebpf.Mov64{Dest: ebpf.BPF_REG_1, Value: 100},
		&ebpf.Mov64{Dest: ebpf.BPF_REG_2, Value: -2},
		&ebpf.StoreMemoryRegister{Dest: ebpf.BPF_REG_1, Src: ebpf.BPF_REG_2, Offset: 8, Size: ebpf.BPF_DW},
		&ebpf.StoreMemoryConstant{Dest: ebpf.BPF_REG_1, Offset: -4, Size: ebpf.BPF_H, Value: -1},
		// Loads zero-extend
		&ebpf.LoadMemory{Dest: ebpf.BPF_REG_3, Src: ebpf.BPF_REG_1, Offset: 8, Size: ebpf.BPF_B},
		&ebpf.LoadMemory{Dest: ebpf.BPF_REG_4, Src: ebpf.BPF_REG_1, Offset: 8, Size: ebpf.BPF_DW},
		&ebpf.LoadMemory{Dest: ebpf.BPF_REG_5, Src: ebpf.BPF_REG_1, Offset: -4, Size: ebpf.BPF_W},
		&ebpf.Exit{},
	)

	if res.State != StateHalted {
		t.Fatalf("expected halted, got %s: %v", res.State, res.Err)
	}
	if res.Registers[3] != 0xfe {
		t.Errorf("r3: want 0xfe, got 0x%x", res.Registers[3])
	}
	if res.Registers[4] != -2 {
		t.Errorf("r4: want -2, got %d", res.Registers[4])
	}
	if res.Registers[5] != 0xffff {
		t.Errorf("r5: want 0xffff, got 0x%x", res.Registers[5])
	}
	if res.Memory[108] != 0xfe || res.Memory[96] != 0xff || res.Memory[98] != 0 {
		t.Errorf("unexpected memory contents %x", res.Memory[96:116])
	}
}

func TestStoreFaultLeavesMemory(t *testing.T) {
	res := mustRun(t, VMSettings{},
		&ebpf.LoadConstant64bit{Dest: ebpf.BPF_REG_1, Val1: MemorySize - 4},
		&ebpf.StoreMemoryConstant{Dest: ebpf.BPF_REG_1, Offset: 0, Size: ebpf.BPF_W, Value: 0x11223344},
		&ebpf.StoreMemoryConstant{Dest: ebpf.BPF_REG_1, Offset: 0, Size: ebpf.BPF_DW, Value: -1},
		&ebpf.Exit{},
	)

	if !errors.Is(res.Err, ErrMemoryFault) {
		t.Fatalf("expected memory fault, got %s: %v", res.State, res.Err)
	}
	if res.Trap.Address != MemorySize-4 || res.Trap.Width != 8 || res.Trap.PC != 3 {
		t.Fatalf("unexpected trap %+v", res.Trap)
	}

	tail := res.Memory[MemorySize-4:]
	if tail[0] != 0x44 || tail[1] != 0x33 || tail[2] != 0x22 || tail[3] != 0x11 {
		t.Fatalf("faulting store changed memory: %x", tail)
	}
}

func TestLoadFault(t *testing.T) {
	res := mustRun(t, VMSettings{},
		&ebpf.Mov64{Dest: ebpf.BPF_REG_1, Value: -1},
		&ebpf.LoadMemory{Dest: ebpf.BPF_REG_0, Src: ebpf.BPF_REG_1, Offset: 0, Size: ebpf.BPF_B},
		&ebpf.Exit{},
	)

	if !errors.Is(res.Err, ErrMemoryFault) || res.Trap.Address != -1 || res.Trap.Width != 1 {
		t.Fatalf("expected memory fault at -1, got %v", res.Err)
	}
	if res.Registers[0] != 0 {
		t.Fatalf("faulting load changed r0 to %d", res.Registers[0])
	}
}

func TestPacketLoads(t *testing.T) {
	packet := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	tests := []struct {
		name string
		inst []ebpf.Instruction
		want int64
	}{
		{
			name: "ldabs byte",
			inst: []ebpf.Instruction{&ebpf.LoadSocketBufConstant{Value: 7, Size: ebpf.BPF_B}},
			want: 0x08,
		},
		{
			name: "ldabs half",
			inst: []ebpf.Instruction{&ebpf.LoadSocketBufConstant{Value: 2, Size: ebpf.BPF_H}},
			want: 0x0403,
		},
		{
			name: "ldabs double",
			inst: []ebpf.Instruction{&ebpf.LoadSocketBufConstant{Value: 0, Size: ebpf.BPF_DW}},
			want: 0x0807060504030201,
		},
		{
			name: "ldind word",
			inst: []ebpf.Instruction{
				&ebpf.Mov64{Dest: ebpf.BPF_REG_1, Value: 3},
				&ebpf.LoadSocketBuf{Src: ebpf.BPF_REG_1, Offset: 1, Size: ebpf.BPF_W},
			},
			want: 0x08070605,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := mustRun(t, VMSettings{Packet: packet}, append(test.inst, &ebpf.Exit{})...)
			if res.State != StateHalted {
				t.Fatalf("expected halted, got %s: %v", res.State, res.Err)
			}
			if res.ExitCode != test.want {
				t.Fatalf("want 0x%x, got 0x%x", test.want, res.ExitCode)
			}
		})
	}
}

func TestPacketFault(t *testing.T) {
	res := mustRun(t, VMSettings{Packet: make([]byte, 4)},
		&ebpf.LoadSocketBufConstant{Value: 2, Size: ebpf.BPF_W},
		&ebpf.Exit{},
	)

	if !errors.Is(res.Err, ErrMemoryFault) || res.Trap.Address != 2 || res.Trap.Width != 4 {
		t.Fatalf("expected memory fault at 2, got %v", res.Err)
	}
}

// Without a packet, LDABS and LDIND read from the linear memory
func TestPacketDefaultsToMemory(t *testing.T) {
	res := mustRun(t, VMSettings{},
		&ebpf.StoreMemoryConstant{Dest: ebpf.BPF_REG_1, Offset: 32, Size: ebpf.BPF_W, Value: 0x0badf00d},
		&ebpf.LoadSocketBufConstant{Value: 32, Size: ebpf.BPF_W},
		&ebpf.Exit{},
	)

	if res.ExitCode != 0x0badf00d {
		t.Fatalf("want 0xbadf00d, got 0x%x", res.ExitCode)
	}
}
