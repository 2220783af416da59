package emulator

import (
	"encoding/binary"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

// MemorySize is the size of the linear memory of every VM in bytes
const MemorySize = 65536

// Memory represents memory which can be accessed by the VM.
type Memory interface {
	Name() string
	// Read returns the zero-extended value of size bytes at addr
	Read(addr int64, size ebpf.Size) (uint64, error)
	// Write stores the low size bytes of value at addr
	Write(addr int64, value uint64, size ebpf.Size) error
	Size() int
	Bytes() []byte
	Clone() Memory
}

var _ Memory = (*ByteMemory)(nil)

// ByteMemory is a type of memory which is backed by a []byte. All multi byte values are little-endian regardless of
// the host byte order. Every access is bounds checked before any byte is touched, so a faulting write leaves the
// memory unchanged.
type ByteMemory struct {
	MemName string
	Backing []byte
}

// NewByteMemory returns a zeroed memory of size bytes
func NewByteMemory(name string, size int) *ByteMemory {
	return &ByteMemory{
		MemName: name,
		Backing: make([]byte, size),
	}
}

func (bm *ByteMemory) Name() string {
	return bm.MemName
}

func (bm *ByteMemory) check(addr int64, size ebpf.Size) (int, error) {
	width := size.Bytes()
	if width == 0 || addr < 0 || addr > int64(len(bm.Backing)-width) {
		return 0, memoryFault(addr, size)
	}

	return int(addr), nil
}

func (bm *ByteMemory) Read(addr int64, size ebpf.Size) (uint64, error) {
	off, err := bm.check(addr, size)
	if err != nil {
		return 0, err
	}

	switch size {
	case ebpf.BPF_B:
		return uint64(bm.Backing[off]), nil
	case ebpf.BPF_H:
		return uint64(binary.LittleEndian.Uint16(bm.Backing[off:])), nil
	case ebpf.BPF_W:
		return uint64(binary.LittleEndian.Uint32(bm.Backing[off:])), nil
	default:
		return binary.LittleEndian.Uint64(bm.Backing[off:]), nil
	}
}

func (bm *ByteMemory) Write(addr int64, value uint64, size ebpf.Size) error {
	off, err := bm.check(addr, size)
	if err != nil {
		return err
	}

	switch size {
	case ebpf.BPF_B:
		bm.Backing[off] = byte(value)
	case ebpf.BPF_H:
		binary.LittleEndian.PutUint16(bm.Backing[off:], uint16(value))
	case ebpf.BPF_W:
		binary.LittleEndian.PutUint32(bm.Backing[off:], uint32(value))
	default:
		binary.LittleEndian.PutUint64(bm.Backing[off:], value)
	}

	return nil
}

func (bm *ByteMemory) Clone() Memory {
	clone := &ByteMemory{
		MemName: bm.MemName,
		Backing: make([]byte, len(bm.Backing)),
	}
	copy(clone.Backing, bm.Backing)
	return clone
}

func (bm *ByteMemory) Size() int {
	return len(bm.Backing)
}

func (bm *ByteMemory) Bytes() []byte {
	return bm.Backing
}
