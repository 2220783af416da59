package ebpf

import "fmt"

// Control flow instructions which don't compare registers. Offsets are relative to the instruction following the
// jump, so an offset of 0 is a no-op.

var _ Instruction = (*Jump)(nil)

// Jump unconditionally continues execution Offset instructions after the next one
type Jump struct {
	Offset int16
}

func (a *Jump) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JMP | BPF_JA, Off: a.Offset},
	}, nil
}

func (a *Jump) String() string {
	return fmt.Sprintf("goto pc%+d", a.Offset)
}

var _ Instruction = (*CallHelper)(nil)

// CallHelper calls a host function identified by Function, arguments are passed in r1-r5 and the result is
// returned in r0.
type CallHelper struct {
	Function int32
}

func (c *CallHelper) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JMP | BPF_CALL, Imm: c.Function},
	}, nil
}

func (c *CallHelper) String() string {
	return fmt.Sprintf("call #%d", c.Function)
}

var _ Instruction = (*Exit)(nil)

// Exit stops the program, r0 is the exit code
type Exit struct{}

func (e *Exit) Raw() ([]RawInstruction, error) {
	return []RawInstruction{
		{Op: BPF_JMP | BPF_EXIT},
	}, nil
}

func (e *Exit) String() string {
	return "exit"
}
