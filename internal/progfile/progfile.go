// Package progfile reads bytecode files from disk. Files are either raw little-endian instructions or the same bytes
// written as hex text, optionally spread over multiple lines.
package progfile

import (
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Read returns the bytecode stored in the file at path. Hex text files are decoded, all other files are returned as is.
func Read(path string) ([]byte, error) {
	data, err := mmapFile(path)
	if err != nil {
		return nil, err
	}

	if IsHex(data) {
		data, err = DecodeHex(data)
		if err != nil {
			return nil, fmt.Errorf("decode hex in %s: %w", path, err)
		}
	}

	return data, nil
}

// mmapFile maps the file read-only and copies its contents out, so the mapping can be released before returning.
func mmapFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}

	size := int(stat.Size())
	// Mapping a zero length region is an error, an empty file is a valid empty program
	if size == 0 {
		return []byte{}, nil
	}

	mapped, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	data := make([]byte, size)
	copy(data, mapped)

	err = unix.Munmap(mapped)
	if err != nil {
		return nil, fmt.Errorf("munmap %s: %w", path, err)
	}

	return data, nil
}

// IsHex returns true if data contains at least one hex digit and nothing but hex digits and whitespace
func IsHex(data []byte) bool {
	digits := 0
	for _, b := range data {
		switch {
		case isHexDigit(b):
			digits++
		case isSpace(b):
		default:
			return false
		}
	}

	return digits > 0
}

// DecodeHex strips all whitespace from data and decodes the remaining hex digits
func DecodeHex(data []byte) ([]byte, error) {
	stripped := make([]byte, 0, len(data))
	for _, b := range data {
		if !isSpace(b) {
			stripped = append(stripped, b)
		}
	}

	out := make([]byte, hex.DecodedLen(len(stripped)))
	n, err := hex.Decode(out, stripped)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
