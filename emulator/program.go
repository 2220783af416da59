package emulator

import (
	"fmt"

	"github.com/dylandreimerink/gobpfvm/ebpf"
	"github.com/zeebo/blake3"
)

// Program is a decoded program. It is never modified after creation and can be shared by many VMs.
type Program struct {
	Raw          []ebpf.RawInstruction
	Instructions []Instruction

	digest [32]byte
}

// NewProgram decodes and translates raw instructions into an executable program
func NewProgram(raw []ebpf.RawInstruction) (*Program, error) {
	inst, err := Translate(ebpf.Decode(raw))
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	return &Program{
		Raw:          raw,
		Instructions: inst,
		digest:       ProgramDigest(ebpf.EncodeBytes(raw)),
	}, nil
}

// LoadProgram decodes a flat bytecode buffer into an executable program
func LoadProgram(bytecode []byte) (*Program, error) {
	raw, err := ebpf.DecodeBytes(bytecode)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return NewProgram(raw)
}

// Digest is the blake3 hash of the bytecode of the program
func (p *Program) Digest() [32]byte {
	return p.digest
}

// Len returns the number of instruction slots in the program
func (p *Program) Len() int {
	return len(p.Instructions)
}

// ProgramDigest returns the blake3 hash of bytecode
func ProgramDigest(bytecode []byte) [32]byte {
	h := blake3.New()
	_, _ = h.Write(bytecode)

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
