package progfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRead(t *testing.T) {
	exit := []byte{0x95, 0, 0, 0, 0, 0, 0, 0}

	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{
			name: "binary",
			data: exit,
			want: exit,
		},
		{
			name: "empty",
			data: []byte{},
			want: []byte{},
		},
		{
			name: "hex",
			data: []byte("9500000000000000"),
			want: exit,
		},
		{
			name: "hex multi line",
			data: []byte("b7 01 00 00 05 00 00 00\n95 00 00 00 00 00 00 00\n"),
			want: []byte{0xb7, 0x01, 0, 0, 0x05, 0, 0, 0, 0x95, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "upper case hex",
			data: []byte("B70100000500000\t0\r\n"),
			want: []byte{0xb7, 0x01, 0, 0, 0x05, 0, 0, 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFile(t, "prog.bin", test.data)

			got, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(got, test.want) {
				t.Fatalf("got % x, want % x", got, test.want)
			}
		})
	}
}

func TestReadOddHex(t *testing.T) {
	path := writeFile(t, "prog.hex", []byte("950"))

	_, err := Read(path)
	if err == nil {
		t.Fatal("expected error for odd length hex")
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.bin"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want %v", err, os.ErrNotExist)
	}
}

func TestReadDirectory(t *testing.T) {
	_, err := Read(t.TempDir())
	if err == nil {
		t.Fatal("expected error when reading a directory")
	}
}

func TestIsHex(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "digits", data: []byte("00ff"), want: true},
		{name: "whitespace only", data: []byte(" \n\t"), want: false},
		{name: "empty", data: nil, want: false},
		{name: "binary", data: []byte{0x95, 0, 0, 0}, want: false},
		{name: "non hex letter", data: []byte("00fg"), want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsHex(test.data); got != test.want {
				t.Fatalf("got %v, want %v", got, test.want)
			}
		})
	}
}
