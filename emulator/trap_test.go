package emulator

import (
	"errors"
	"testing"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

func TestTrapIs(t *testing.T) {
	tests := []struct {
		trap *Trap
		want error
		str  string
	}{
		{trap: invalidOpcode(0xee), want: ErrInvalidOpcode, str: "pc 0: invalid opcode 0xee"},
		{trap: memoryFault(70000, ebpf.BPF_W), want: ErrMemoryFault, str: "pc 0: memory access out of bounds, addr 70000, width 4"},
		{trap: divisionByZero(), want: ErrDivisionByZero, str: "pc 0: division by zero"},
		{trap: unsupportedCall(9), want: ErrUnsupportedCall, str: "pc 0: unsupported call 9"},
		{trap: invalidRegister(11), want: ErrInvalidRegister, str: "pc 0: invalid register r11"},
		{trap: invalidJump(-3), want: ErrInvalidJump, str: "pc 0: jump target out of range -3"},
	}

	all := []error{ErrInvalidOpcode, ErrMemoryFault, ErrDivisionByZero, ErrUnsupportedCall, ErrInvalidRegister,
		ErrInvalidJump}

	for _, test := range tests {
		t.Run(test.trap.Kind.String(), func(t *testing.T) {
			var err error = test.trap
			for _, sentinel := range all {
				if errors.Is(err, sentinel) != (sentinel == test.want) {
					t.Errorf("errors.Is(%v, %v) mismatch", err, sentinel)
				}
			}

			if err.Error() != test.str {
				t.Errorf("want %q, got %q", test.str, err.Error())
			}
		})
	}
}
