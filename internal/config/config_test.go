package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dylandreimerink/gobpfvm/emulator"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bpfvm.toml")
	err := os.WriteFile(path, []byte(`
max_steps = 1000
verbosity = 2
packet_file = "packet.bin"
snapshot = "out.cbor"
stats = true

[helpers]
enable = [1, 3]
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		MaxSteps:   1000,
		Verbosity:  2,
		PacketFile: "packet.bin",
		Snapshot:   "out.cbor",
		Stats:      true,
		Helpers: Helpers{
			Enable: []int32{emulator.HelperTrace, emulator.HelperPrandom},
		},
	}
	if !reflect.DeepEqual(c, want) {
		t.Fatalf("got %+v, want %+v", c, want)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "bpfvm.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte(`max_steps = 5`))
	if err != nil {
		t.Fatal(err)
	}

	if c.MaxSteps != 5 {
		t.Errorf("max steps: got %d, want 5", c.MaxSteps)
	}

	if !reflect.DeepEqual(c.Helpers.Enable, Default().Helpers.Enable) {
		t.Errorf("helpers: got %v, want %v", c.Helpers.Enable, Default().Helpers.Enable)
	}
}

func TestParseNoHelpers(t *testing.T) {
	c, err := Parse([]byte("[helpers]\nenable = []\n"))
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Helpers.Enable) != 0 {
		t.Fatalf("expected no helpers, got %v", c.Helpers.Enable)
	}

	settings := c.VMSettings(nil)
	if _, ok := settings.Helpers.Resolve(emulator.HelperTrace); ok {
		t.Fatal("trace helper should not be resolvable")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "unknown key",
			data: "max_step = 5\n",
			want: "unknown keys: max_step",
		},
		{
			name: "unknown helper key",
			data: "[helpers]\ndisable = [1]\n",
			want: "unknown keys: helpers.disable",
		},
		{
			name: "unknown helper id",
			data: "[helpers]\nenable = [99]\n",
			want: "no built-in helper with id 99",
		},
		{
			name: "negative verbosity",
			data: "verbosity = -1\n",
			want: "verbosity can't be negative",
		},
		{
			name: "syntax",
			data: "max_steps = \n",
			want: "parse error",
		},
		{
			name: "wrong type",
			data: "max_steps = \"many\"\n",
			want: "parse error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data))
			if err == nil {
				t.Fatal("expected error")
			}

			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("got %q, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestVMSettings(t *testing.T) {
	c := Default()
	c.MaxSteps = 10
	packet := []byte{1, 2, 3}

	settings := c.VMSettings(packet)
	if settings.MaxSteps != 10 {
		t.Errorf("max steps: got %d, want 10", settings.MaxSteps)
	}

	if !reflect.DeepEqual(settings.Packet, packet) {
		t.Errorf("packet: got %v, want %v", settings.Packet, packet)
	}

	for _, id := range []int32{emulator.HelperTrace, emulator.HelperKtime, emulator.HelperPrandom} {
		if _, ok := settings.Helpers.Resolve(id); !ok {
			t.Errorf("helper %d not resolvable", id)
		}
	}
}
