package emulator

import (
	"fmt"

	"github.com/armon/go-metrics"
	lru "github.com/hashicorp/golang-lru"
)

// ProgramCache keeps recently used decoded programs, keyed by the digest of their bytecode. It is safe for
// concurrent use.
type ProgramCache struct {
	programs *lru.TwoQueueCache
}

func NewProgramCache(size int) (*ProgramCache, error) {
	programs, err := lru.New2Q(size)
	if err != nil {
		return nil, fmt.Errorf("new program cache: %w", err)
	}

	return &ProgramCache{programs: programs}, nil
}

// Load returns the cached program for bytecode, decoding and caching it on a miss
func (c *ProgramCache) Load(bytecode []byte) (*Program, error) {
	digest := ProgramDigest(bytecode)
	if prog, ok := c.programs.Get(digest); ok {
		metrics.IncrCounter([]string{"bpfvm", "cache", "hit"}, 1)
		return prog.(*Program), nil
	}
	metrics.IncrCounter([]string{"bpfvm", "cache", "miss"}, 1)

	prog, err := LoadProgram(bytecode)
	if err != nil {
		return nil, err
	}

	c.programs.Add(digest, prog)
	log.Debugf("cached program %x, %d instructions", digest[:8], prog.Len())

	return prog, nil
}

// Run is like the package level Run, but reuses the decoded program if the same bytecode was run before
func (c *ProgramCache) Run(bytecode []byte, settings VMSettings) (*Result, error) {
	prog, err := c.Load(bytecode)
	if err != nil {
		return nil, err
	}

	return NewVM(prog, settings).Run(), nil
}

// Len returns the number of cached programs
func (c *ProgramCache) Len() int {
	return c.programs.Len()
}
