package ebpf

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestDecodeBytesLayout(t *testing.T) {
	// mov r1 = -2 with an unused offset of 0x1234
	buf := []byte{0xb7, 0x21, 0x34, 0x12, 0xfe, 0xff, 0xff, 0xff}

	raw, err := DecodeBytes(buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(raw) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(raw))
	}

	inst := raw[0]
	if inst.Op != 0xb7 {
		t.Errorf("op: want 0xb7, got 0x%02x", inst.Op)
	}
	if inst.GetDestReg() != BPF_REG_1 {
		t.Errorf("dest: want r1, got %s", inst.GetDestReg())
	}
	if inst.GetSourceReg() != BPF_REG_2 {
		t.Errorf("src: want r2, got %s", inst.GetSourceReg())
	}
	if inst.Off != 0x1234 {
		t.Errorf("off: want 0x1234, got 0x%x", inst.Off)
	}
	if inst.Imm != -2 {
		t.Errorf("imm: want -2, got %d", inst.Imm)
	}
}

func TestDecodeBytesMisaligned(t *testing.T) {
	for _, n := range []int{1, 7, 9, 15} {
		_, err := DecodeBytes(make([]byte, n))
		if !errors.Is(err, ErrMisalignedLength) {
			t.Errorf("len %d: expected ErrMisalignedLength, got %v", n, err)
		}

		var decErr *DecodeError
		if !errors.As(err, &decErr) || decErr.Length != n {
			t.Errorf("len %d: expected DecodeError with length, got %v", n, err)
		}
	}
}

func TestDecodeBytesEmpty(t *testing.T) {
	raw, err := DecodeBytes(nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(raw) != 0 {
		t.Fatalf("expected empty program, got %d instructions", len(raw))
	}
}

// Every buffer with a length which is a multiple of 8 must survive a decode/encode round trip unchanged
func TestDecodeBytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		buf := make([]byte, rng.Intn(32)*BPFInstSize)
		rng.Read(buf)

		raw, err := DecodeBytes(buf)
		if err != nil {
			t.Fatal(err)
		}

		if len(raw) != len(buf)/BPFInstSize {
			t.Fatalf("expected %d instructions, got %d", len(buf)/BPFInstSize, len(raw))
		}

		if out := EncodeBytes(raw); !bytes.Equal(buf, out) {
			t.Fatalf("round trip mismatch\nin:  %x\nout: %x", buf, out)
		}
	}
}

func TestRawInstructionBinary(t *testing.T) {
	in := RawInstruction{Op: 0x7b, Reg: NewReg(BPF_REG_3, BPF_REG_10), Off: -8, Imm: 0}

	b, err := in.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x7b, 0x3a, 0xf8, 0xff, 0, 0, 0, 0}
	if !bytes.Equal(b, want) {
		t.Fatalf("want %x, got %x", want, b)
	}

	var out RawInstruction
	if err = out.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("want %v, got %v", in, out)
	}

	if err = out.UnmarshalBinary(b[:4]); err == nil {
		t.Fatal("expected error for short input")
	}
}

func TestRegisterNibbles(t *testing.T) {
	var inst RawInstruction
	inst.SetDestReg(BPF_REG_9)
	inst.SetSourceReg(Register(15))

	if inst.GetDestReg() != BPF_REG_9 {
		t.Errorf("dest: want r9, got %s", inst.GetDestReg())
	}
	if inst.GetSourceReg() != 15 {
		t.Errorf("src: want 15, got %d", inst.GetSourceReg())
	}
	if inst.GetSourceReg().Valid() {
		t.Error("register 15 should not be valid")
	}
	if inst.Reg != 0xf9 {
		t.Errorf("reg: want 0xf9, got 0x%02x", inst.Reg)
	}
}
