// Package config handles bpfvm.toml settings files of the bpfvm command.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dylandreimerink/gobpfvm/emulator"
)

// DefaultVerbosity is the log verbosity used when the file doesn't set one, it hides info and debug messages.
const DefaultVerbosity = 0

// Config represents a bpfvm.toml file.
type Config struct {
	// MaxSteps limits the number of executed instructions, 0 means unlimited
	MaxSteps uint64 `toml:"max_steps"`
	// Verbosity of the log output, 1 is info and 2 is debug, which traces every instruction
	Verbosity int `toml:"verbosity"`
	// PacketFile is loaded as packet buffer of LDABS and LDIND
	PacketFile string `toml:"packet_file"`
	// Snapshot is the path a CBOR snapshot of the result is written to
	Snapshot string `toml:"snapshot"`
	// Stats prints the run metrics after execution
	Stats bool `toml:"stats"`

	Helpers Helpers `toml:"helpers"`
}

// Helpers selects the built-in helper functions available to CALL instructions.
type Helpers struct {
	Enable []int32 `toml:"enable"`
}

// Default returns the config used when no file is given
func Default() *Config {
	return &Config{
		Verbosity: DefaultVerbosity,
		Helpers: Helpers{
			Enable: []int32{emulator.HelperTrace, emulator.HelperKtime, emulator.HelperPrandom},
		},
	}
}

// Load parses the settings file at path. Keys which are not known are reported as error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses the contents of a settings file
func Parse(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	// Defaults
	if !md.IsDefined("helpers", "enable") {
		c.Helpers.Enable = Default().Helpers.Enable
	}

	if c.Verbosity < 0 {
		return nil, fmt.Errorf("verbosity can't be negative, got %d", c.Verbosity)
	}

	for _, id := range c.Helpers.Enable {
		if _, ok := emulator.BuiltinHelper(id); !ok {
			return nil, fmt.Errorf("helpers.enable: no built-in helper with id %d", id)
		}
	}

	return &c, nil
}

// VMSettings converts the config into settings for the emulator. The packet buffer is not part of the config, only
// its path, so it is passed in by the caller.
func (c *Config) VMSettings(packet []byte) emulator.VMSettings {
	helpers := make(emulator.HelperTable, len(c.Helpers.Enable))
	for _, id := range c.Helpers.Enable {
		if f, ok := emulator.BuiltinHelper(id); ok {
			helpers[id] = f
		}
	}

	return emulator.VMSettings{
		MaxSteps: c.MaxSteps,
		Helpers:  helpers,
		Packet:   packet,
	}
}
