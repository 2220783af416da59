package emulator

import (
	"time"

	"github.com/dylandreimerink/gobpfvm/ebpf"
)

// HelperFunc are functions in go space which can be called from the eBPF VM. They are used expand eBPF capabilities
// without giving the VM direct access, much like a syscall in an OS context.
// A helper function is passed a copy of all registers, by convention it only reads R1-R5. The return value is
// written to R0. Helpers can't fail, errors have to be communicated to the program via the return value.
type HelperFunc func(regs [ebpf.NumRegisters]int64) int64

// CallResolver maps the id of a CALL instruction to a helper function
type CallResolver interface {
	Resolve(id int32) (HelperFunc, bool)
}

var _ CallResolver = HelperTable(nil)

// HelperTable is the simplest CallResolver, a map from call id to helper function
type HelperTable map[int32]HelperFunc

func (ht HelperTable) Resolve(id int32) (HelperFunc, bool) {
	f, ok := ht[id]
	return f, ok && f != nil
}

// Ids of the built-in helper functions
const (
	HelperTrace   int32 = 1
	HelperKtime   int32 = 2
	HelperPrandom int32 = 3
)

var builtinHelpers = map[int32]HelperFunc{
	HelperTrace:   Trace,
	HelperKtime:   Ktime,
	HelperPrandom: Prandom,
}

// BuiltinHelper returns the built-in helper function with the given id
func BuiltinHelper(id int32) (HelperFunc, bool) {
	f, ok := builtinHelpers[id]
	return f, ok
}

// DefaultHelpers returns a new table with all built-in helper functions
func DefaultHelpers() HelperTable {
	table := make(HelperTable, len(builtinHelpers))
	for id, f := range builtinHelpers {
		table[id] = f
	}

	return table
}

// Trace logs the helper arguments R1-R5 and returns 0
func Trace(regs [ebpf.NumRegisters]int64) int64 {
	log.Infof("trace: r1=%d r2=%d r3=%d r4=%d r5=%d", regs[1], regs[2], regs[3], regs[4], regs[5])
	return 0
}

var ktimeBase = time.Now()

// Ktime returns the nanoseconds elapsed since the package was initialized, it never decreases
func Ktime(regs [ebpf.NumRegisters]int64) int64 {
	return int64(time.Since(ktimeBase))
}

// Prandom returns a pseudo random number derived from the seed in R1 with a xorshift64 step. The same seed always
// gives the same number so programs stay deterministic.
func Prandom(regs [ebpf.NumRegisters]int64) int64 {
	x := uint64(regs[ebpf.BPF_REG_1])
	if x == 0 {
		x = 0x9e3779b97f4a7c15
	}

	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17

	return int64(x)
}
