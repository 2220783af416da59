// Package ebpf contains the types and constants to decode and encode eBPF style bytecode in go.
//
// A program is a flat byte buffer with an 8 byte stride. DecodeBytes splits it into RawInstructions and Decode turns
// those into typed instructions, one go type per concrete operation. Only the 64-bit ALU class, the byteswap
// operations, the load/store classes and the 64-bit jump class are understood, everything else decodes to an *Invalid.
package ebpf
