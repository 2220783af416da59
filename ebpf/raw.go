package ebpf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrMisalignedLength is returned when a bytecode buffer isn't a multiple of BPFInstSize bytes long
var ErrMisalignedLength = errors.New("bytecode length is not a multiple of the instruction size")

// A DecodeError is returned when a byte buffer can't be split into raw instructions
type DecodeError struct {
	Length int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %d bytes, %d trailing: %s", e.Length, e.Length%BPFInstSize, ErrMisalignedLength)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrMisalignedLength
}

// DecodeBytes splits a flat bytecode buffer into raw instructions. Multi byte fields are always little-endian,
// regardless of the host byte order.
func DecodeBytes(buf []byte) ([]RawInstruction, error) {
	if len(buf)%BPFInstSize != 0 {
		return nil, &DecodeError{Length: len(buf)}
	}

	raw := make([]RawInstruction, len(buf)/BPFInstSize)
	for i := range raw {
		raw[i].UnmarshalBinary(buf[i*BPFInstSize : (i+1)*BPFInstSize])
	}

	return raw, nil
}

// EncodeBytes is the inverse of DecodeBytes
func EncodeBytes(raw []RawInstruction) []byte {
	buf := make([]byte, 0, len(raw)*BPFInstSize)
	for _, inst := range raw {
		buf = inst.AppendBinary(buf)
	}

	return buf
}

// AppendBinary appends the 8 byte encoding of the instruction to buf
func (i RawInstruction) AppendBinary(buf []byte) []byte {
	var b [BPFInstSize]byte
	b[0] = i.Op
	b[1] = i.Reg
	binary.LittleEndian.PutUint16(b[2:4], uint16(i.Off))
	binary.LittleEndian.PutUint32(b[4:8], uint32(i.Imm))
	return append(buf, b[:]...)
}

// MarshalBinary returns the 8 byte encoding of the instruction
func (i RawInstruction) MarshalBinary() ([]byte, error) {
	return i.AppendBinary(nil), nil
}

// UnmarshalBinary decodes exactly one instruction from b
func (i *RawInstruction) UnmarshalBinary(b []byte) error {
	if len(b) != BPFInstSize {
		return fmt.Errorf("instruction must be %d bytes, got %d", BPFInstSize, len(b))
	}

	i.Op = b[0]
	i.Reg = b[1]
	i.Off = int16(binary.LittleEndian.Uint16(b[2:4]))
	i.Imm = int32(binary.LittleEndian.Uint32(b[4:8]))

	return nil
}

func (i RawInstruction) String() string {
	return fmt.Sprintf("op: %02x, src: %s, dst: %s, off: %d, imm: %d",
		i.Op, i.GetSourceReg(), i.GetDestReg(), i.Off, i.Imm)
}
