package emulator

import (
	"errors"
	"fmt"

	"github.com/dylandreimerink/gobpfvm/ebpf"
	"github.com/fxamacker/cbor/v2"
)

type resultSnapshot struct {
	Registers [ebpf.NumRegisters]int64 `cbor:"registers"`
	Memory    []byte                   `cbor:"memory"`
	State     State                    `cbor:"state"`
	ExitCode  int64                    `cbor:"exit_code"`
	Trap      *Trap                    `cbor:"trap,omitempty"`
	Err       string                   `cbor:"err,omitempty"`
	Steps     uint64                   `cbor:"steps"`
}

// MarshalSnapshot encodes the result as CBOR so it can be inspected offline. The Err of an aborted run only
// survives as its message.
func (r *Result) MarshalSnapshot() ([]byte, error) {
	snap := resultSnapshot{
		Registers: r.Registers,
		Memory:    r.Memory,
		State:     r.State,
		ExitCode:  r.ExitCode,
		Trap:      r.Trap,
		Steps:     r.Steps,
	}
	if r.Err != nil {
		snap.Err = r.Err.Error()
	}

	data, err := cbor.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("cbor marshal: %w", err)
	}

	return data, nil
}

// UnmarshalSnapshot decodes a result encoded by MarshalSnapshot
func UnmarshalSnapshot(data []byte) (*Result, error) {
	var snap resultSnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("cbor unmarshal: %w", err)
	}

	res := &Result{
		Registers: snap.Registers,
		Memory:    snap.Memory,
		State:     snap.State,
		ExitCode:  snap.ExitCode,
		Trap:      snap.Trap,
		Steps:     snap.Steps,
	}

	switch {
	case snap.Trap != nil:
		res.Err = snap.Trap
	case snap.Err != "":
		res.Err = errors.New(snap.Err)
	}

	return res, nil
}
